package routing_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"hotline/internal/directory/models"
	"hotline/internal/routing"
	dErrors "hotline/pkg/domain-errors"
)

type ResolverSuite struct {
	suite.Suite
	dir *models.Directory
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.dir = easternDirectory()
}

func (s *ResolverSuite) assertNames(want []string, got routing.Result) {
	s.T().Helper()
	if diff := cmp.Diff(want, names(got.Contacts)); diff != "" {
		s.Failf("unexpected contacts", "(-want +got):\n%s", diff)
	}
}

func (s *ResolverSuite) TestPurity() {
	criteria := routing.Criteria{County: "Spokane", Urgency: routing.UrgencyRoutine}
	first := routing.Resolve(s.dir, criteria, wednesdayMorning)
	for i := 0; i < 10; i++ {
		again := routing.Resolve(s.dir, criteria, wednesdayMorning)
		s.Equal(first, again)
	}
	s.Equal([]string{"SCRAPS", "Central Washington Wildlife Hospital", "WSU Veterinary Teaching Hospital", "WDFW Eastern Region"},
		names(s.dir.Contacts()), "directory order must be untouched")
}

func (s *ResolverSuite) TestStrictMatch() {
	result := routing.Resolve(s.dir, routing.Criteria{County: "Spokane County", AnimalType: models.AnimalCoyotes}, saturdayMorning)
	s.Equal(routing.StageStrict, result.Stage)
	s.assertNames([]string{"WDFW Eastern Region"}, result)
}

func (s *ResolverSuite) TestEasternWashingtonCoverage() {
	result := routing.Resolve(s.dir, routing.Criteria{County: "Spokane"}, saturdayMorning)
	s.Equal(routing.StageStrict, result.Stage)
	s.assertNames([]string{"WSU Veterinary Teaching Hospital", "WDFW Eastern Region", "SCRAPS"}, result)
}

func (s *ResolverSuite) TestDropsAnimalTypeFirst() {
	result := routing.Resolve(s.dir, routing.Criteria{
		County:     "Chelan",
		AnimalType: models.AnimalReptiles,
		Service:    models.ServiceWildlifeStabilization,
	}, wednesdayMorning)

	s.Equal(routing.StageWithoutAnimalType, result.Stage)
	s.assertNames([]string{"WSU Veterinary Teaching Hospital", "Central Washington Wildlife Hospital"}, result)
}

func (s *ResolverSuite) TestOpenFilter() {
	s.Run("emergency requires open at now", func() {
		result := routing.Resolve(s.dir, routing.Criteria{County: "Spokane", Urgency: routing.UrgencyEmergency}, saturdayMorning)
		s.Equal(routing.StageStrict, result.Stage)
		s.assertNames([]string{"WSU Veterinary Teaching Hospital"}, result)
	})

	s.Run("require open", func() {
		result := routing.Resolve(s.dir, routing.Criteria{County: "Spokane", RequireOpen: true}, wednesdayMorning)
		s.assertNames([]string{"WSU Veterinary Teaching Hospital", "WDFW Eastern Region", "SCRAPS"}, result)
	})

	s.Run("specific instant overrides now", func() {
		at := saturdayMorning
		result := routing.Resolve(s.dir, routing.Criteria{County: "Spokane", OpenAt: &at}, wednesdayMorning)
		s.assertNames([]string{"WSU Veterinary Teaching Hospital"}, result)
	})
}

func (s *ResolverSuite) TestRabiesVector() {
	result := routing.Resolve(s.dir, routing.Criteria{County: "Spokane", RabiesVector: true}, wednesdayMorning)
	s.assertNames([]string{"WSU Veterinary Teaching Hospital"}, result)
}

func (s *ResolverSuite) TestStatewideFallback() {
	enforcement := contact("WDFW Enforcement", "Mon-Fri 8-5", []string{"Statewide"},
		[]models.ServiceKind{models.ServiceLawEnforcement, models.ServiceUnsafeAnimalResponse})
	dir := models.NewDirectory(append(s.dir.Contacts(), enforcement), "test", time.Time{})

	result := routing.Resolve(dir, routing.Criteria{County: "King", Service: models.ServiceVeterinary}, wednesdayMorning)
	s.Equal(routing.StageStatewide, result.Stage)
	s.assertNames([]string{"WDFW Enforcement"}, result)

	s.Run("statewide contacts must still be open in an emergency", func() {
		result := routing.Resolve(dir, routing.Criteria{County: "King", Urgency: routing.UrgencyEmergency}, saturdayMorning)
		s.Equal(routing.StageAlwaysOpen, result.Stage)
		s.assertNames([]string{"WSU Veterinary Teaching Hospital"}, result)
	})
}

func (s *ResolverSuite) TestEmergencyOutsideTheDirectory() {
	petER := contact("Pet Emergency Clinic", "24 hours", []string{"Spokane County"},
		[]models.ServiceKind{models.ServiceVeterinary})
	dir := models.NewDirectory(append(s.dir.Contacts(), petER), "test", time.Time{})

	for _, at := range []time.Time{wednesdayMorning, saturdayMorning, sundayMidnight} {
		result := routing.Resolve(dir, routing.Criteria{County: "Clallam", Urgency: routing.UrgencyEmergency}, at)
		s.Equal(routing.StageAlwaysOpen, result.Stage)
		s.Require().NotEmpty(result.Contacts)
		for _, c := range result.Contacts {
			s.True(c.IsAlwaysOpen(), "%s is not 24/7", c.Name)
		}
	}
}

func (s *ResolverSuite) TestExhaustedLadder() {
	result := routing.Resolve(s.dir, routing.Criteria{County: "Clallam"}, wednesdayMorning)
	s.True(result.Empty())
	s.Nil(result.Primary())
	s.Equal(routing.StageNone, result.Stage)

	s.Run("empty directory", func() {
		result := routing.Resolve(models.NewDirectory(nil, "", time.Time{}),
			routing.Criteria{Urgency: routing.UrgencyEmergency}, wednesdayMorning)
		s.True(result.Empty())
	})

	s.Run("nil directory", func() {
		s.True(routing.Resolve(nil, routing.Criteria{}, wednesdayMorning).Empty())
	})
}

func (s *ResolverSuite) TestResultCap() {
	s.Run("default cap", func() {
		result := routing.Resolve(s.dir, routing.Criteria{}, wednesdayMorning)
		s.Len(result.Contacts, routing.DefaultMaxResults)
		s.Equal("WSU Veterinary Teaching Hospital", result.Primary().Name)
	})

	s.Run("explicit cap", func() {
		result := routing.Resolve(s.dir, routing.Criteria{MaxResults: 1}, wednesdayMorning)
		s.Len(result.Contacts, 1)
	})
}

func (s *ResolverSuite) TestValidate() {
	bad := []struct {
		field    string
		criteria routing.Criteria
	}{
		{"urgency", routing.Criteria{Urgency: "panic"}},
		{"service", routing.Criteria{Service: "emergency"}},
		{"max_results", routing.Criteria{MaxResults: -1}},
		{"open_at", routing.Criteria{OpenAt: &time.Time{}}},
	}
	for _, tc := range bad {
		s.Run(tc.field, func() {
			err := tc.criteria.Validate()
			s.Require().Error(err)
			s.True(dErrors.Is(err, dErrors.CodeValidation))
			s.Contains(err.Error(), tc.field)
		})
	}

	s.NoError(routing.Criteria{}.Validate())
	s.NoError(routing.Criteria{County: "Spokane", Urgency: routing.UrgencyEmergency, Service: models.ServiceVeterinary}.Validate())
}
