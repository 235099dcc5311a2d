package models

// ServiceKind is a machine tag for what a contact does. Tags are matched
// exactly; they are never fuzzed.
type ServiceKind string

const (
	ServiceUnsafeAnimalResponse     ServiceKind = "unsafe_animal_response"
	ServiceEmergencyWildlifeMedical ServiceKind = "emergency_wildlife_medical"
	ServiceNonEmergencyRehab        ServiceKind = "non_emergency_wildlife_rehab"
	ServiceWildlifeStabilization    ServiceKind = "wildlife_stabilization"
	ServiceVeterinary               ServiceKind = "veterinary_services"
	ServiceDomesticAnimalControl    ServiceKind = "domestic_animal_control"
	ServiceLivestockControl         ServiceKind = "livestock_control"
	ServiceRabiesInformation        ServiceKind = "rabies_information"
	ServiceGeneralInformation       ServiceKind = "general_information"
	ServiceLawEnforcement           ServiceKind = "law_enforcement"
)

// IsValid checks the tag against the fixed vocabulary.
func (s ServiceKind) IsValid() bool {
	switch s {
	case ServiceUnsafeAnimalResponse, ServiceEmergencyWildlifeMedical, ServiceNonEmergencyRehab,
		ServiceWildlifeStabilization, ServiceVeterinary, ServiceDomesticAnimalControl,
		ServiceLivestockControl, ServiceRabiesInformation, ServiceGeneralInformation,
		ServiceLawEnforcement:
		return true
	}
	return false
}

// IsEmergencyClass reports whether the service puts a contact in the
// emergency tier of the ranking.
func (s ServiceKind) IsEmergencyClass() bool {
	return s == ServiceEmergencyWildlifeMedical || s == ServiceUnsafeAnimalResponse
}

func (s ServiceKind) String() string {
	return string(s)
}

// AnimalType is an animal-category tag. Unlike services these are matched by
// substring, so queries like "bat" find contacts tagged "bats".
type AnimalType string

const (
	AnimalLargeMammals AnimalType = "large_mammals"
	AnimalSmallMammals AnimalType = "small_mammals"
	AnimalRaptors      AnimalType = "raptors"
	AnimalSongbirds    AnimalType = "songbirds"
	AnimalBats         AnimalType = "bats"
	AnimalReptiles     AnimalType = "reptiles"
	AnimalDomesticPets AnimalType = "domestic_pets"
	AnimalLivestock    AnimalType = "livestock"
	AnimalRaccoons     AnimalType = "raccoons"
	AnimalCoyotes      AnimalType = "coyotes"
	AnimalSkunks       AnimalType = "skunks"
)

// IsKnown checks the tag against the fixed vocabulary.
func (a AnimalType) IsKnown() bool {
	switch a {
	case AnimalLargeMammals, AnimalSmallMammals, AnimalRaptors, AnimalSongbirds, AnimalBats,
		AnimalReptiles, AnimalDomesticPets, AnimalLivestock, AnimalRaccoons, AnimalCoyotes,
		AnimalSkunks:
		return true
	}
	return false
}

func (a AnimalType) String() string {
	return string(a)
}
