package routing_test

import (
	"time"

	"hotline/internal/directory/models"
)

var (
	// Wednesday 2025-01-15 10:00 PST.
	wednesdayMorning = time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC)
	// Saturday 2025-01-18 10:00 PST.
	saturdayMorning = time.Date(2025, 1, 18, 18, 0, 0, 0, time.UTC)
	// Sunday 2025-01-19 00:00 PST.
	sundayMidnight = time.Date(2025, 1, 19, 8, 0, 0, 0, time.UTC)
	// Wednesday 2025-07-16 08:30 PDT; 07:30 under a fixed UTC-8 offset.
	summerOpening = time.Date(2025, 7, 16, 15, 30, 0, 0, time.UTC)
)

func contact(name, hours string, coverage []string, services []models.ServiceKind, animals ...models.AnimalType) *models.Contact {
	return &models.Contact{
		Name:        name,
		Phone:       "509-555-0100",
		Hours:       hours,
		Schedule:    models.ParseSchedule(hours),
		Coverage:    coverage,
		Services:    services,
		AnimalTypes: animals,
	}
}

func names(contacts []*models.Contact) []string {
	out := make([]string, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, c.Name)
	}
	return out
}

// easternDirectory mirrors the production data: an Eastern Washington
// hospital, county animal control, a regional rehabber and the statewide
// enforcement line.
func easternDirectory() *models.Directory {
	wsu := contact("WSU Veterinary Teaching Hospital", "24/7",
		[]string{"Whitman County", "Eastern Washington"},
		[]models.ServiceKind{models.ServiceEmergencyWildlifeMedical, models.ServiceVeterinary, models.ServiceWildlifeStabilization},
		models.AnimalRaptors, models.AnimalSmallMammals, models.AnimalLargeMammals)
	wsu.HandlesRabiesVectorSpecies = true

	scraps := contact("SCRAPS", "Mon-Fri 8:00-17:00",
		[]string{"Spokane County"},
		[]models.ServiceKind{models.ServiceDomesticAnimalControl},
		models.AnimalDomesticPets)

	rehab := contact("Central Washington Wildlife Hospital", "Varies, call for intake.",
		[]string{"Chelan County", "Douglas County"},
		[]models.ServiceKind{models.ServiceNonEmergencyRehab, models.ServiceWildlifeStabilization},
		models.AnimalSongbirds, models.AnimalRaptors)

	region := contact("WDFW Eastern Region", "Mon-Fri, 8 AM - 5 PM",
		[]string{"Spokane County", "Ferry County", "Stevens County"},
		[]models.ServiceKind{models.ServiceGeneralInformation, models.ServiceUnsafeAnimalResponse},
		models.AnimalLargeMammals, models.AnimalCoyotes)

	return models.NewDirectory([]*models.Contact{scraps, rehab, wsu, region}, "test", time.Time{})
}
