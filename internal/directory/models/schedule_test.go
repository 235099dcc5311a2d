package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"hotline/internal/directory/models"
)

type ScheduleSuite struct {
	suite.Suite
}

func TestScheduleSuite(t *testing.T) {
	suite.Run(t, new(ScheduleSuite))
}

func (s *ScheduleSuite) TestAlwaysOpen() {
	for _, hours := range []string{"24/7", "Open 24/7 for emergencies", "24 hours", "Hotline answered 24 Hours"} {
		s.Run(hours, func() {
			s.Equal(models.ScheduleAlwaysOpen, models.ParseSchedule(hours).Kind)
		})
	}
}

func (s *ScheduleSuite) TestWeekly() {
	cases := []struct {
		hours       string
		first, last time.Weekday
		open, close time.Duration
	}{
		{"Mon-Fri 8:00-17:00", time.Monday, time.Friday, 8 * time.Hour, 17 * time.Hour},
		{"Mon-Fri, 8 AM - 5 PM", time.Monday, time.Friday, 8 * time.Hour, 17 * time.Hour},
		{"Monday-Friday 8am-5pm", time.Monday, time.Friday, 8 * time.Hour, 17 * time.Hour},
		{"Mon-Fri 8-5", time.Monday, time.Friday, 8 * time.Hour, 17 * time.Hour},
		{"Tue through Sat, 9:30 a.m. to 4:30 p.m.", time.Tuesday, time.Saturday, 9*time.Hour + 30*time.Minute, 16*time.Hour + 30*time.Minute},
		{"Fri-Mon 10 PM - 6 AM", time.Friday, time.Monday, 22 * time.Hour, 6 * time.Hour},
		{"Mon-Sun 12 AM - 12 PM", time.Monday, time.Sunday, 0, 12 * time.Hour},
	}
	for _, tc := range cases {
		s.Run(tc.hours, func() {
			sched := models.ParseSchedule(tc.hours)
			s.Require().Equal(models.ScheduleWeekly, sched.Kind)
			s.Equal(tc.first, sched.FirstDay)
			s.Equal(tc.last, sched.LastDay)
			s.Equal(tc.open, sched.Open)
			s.Equal(tc.close, sched.Close)
			s.Equal(tc.hours, sched.Raw)
		})
	}
}

func (s *ScheduleSuite) TestUnparsed() {
	for _, hours := range []string{
		"",
		"Varies, call for intake.",
		"Mon-Fri",
		"8 AM - 5 PM daily",
		"Mon-Fri 13 PM - 5 PM",
	} {
		s.Run(hours, func() {
			sched := models.ParseSchedule(hours)
			s.Equal(models.ScheduleUnparsed, sched.Kind)
			s.True(sched.IsSet())
		})
	}
}

func (s *ScheduleSuite) TestIncludes() {
	s.Run("plain day range", func() {
		sched := models.ParseSchedule("Mon-Fri 8:00-17:00")
		s.True(sched.IncludesDay(time.Wednesday))
		s.False(sched.IncludesDay(time.Saturday))
		s.True(sched.IncludesTime(8 * time.Hour))
		s.False(sched.IncludesTime(17 * time.Hour))
	})

	s.Run("wrapping day and time ranges", func() {
		sched := models.ParseSchedule("Fri-Mon 10 PM - 6 AM")
		s.True(sched.IncludesDay(time.Sunday))
		s.True(sched.IncludesDay(time.Monday))
		s.False(sched.IncludesDay(time.Wednesday))
		s.True(sched.IncludesTime(23 * time.Hour))
		s.True(sched.IncludesTime(time.Hour))
		s.False(sched.IncludesTime(12 * time.Hour))
	})
}

func (s *ScheduleSuite) TestContactHelpers() {
	c := &models.Contact{
		Name:     "WSU Veterinary Teaching Hospital",
		Hours:    "24/7",
		Address:  "205 Ott Rd, Pullman, WA 99164",
		Services: []models.ServiceKind{models.ServiceVeterinary, models.ServiceEmergencyWildlifeMedical},
		Coverage: []string{"Whitman County"},
	}
	s.True(c.IsAlwaysOpen())
	s.True(c.HasEmergencyService())
	s.Equal("Pullman", c.City())
	s.False(c.IsStatewide())

	s.Run("loader schedule wins over hours text", func() {
		c := &models.Contact{Hours: "24/7", Schedule: models.ParseSchedule("Mon-Fri 8-5")}
		s.False(c.IsAlwaysOpen())
	})

	s.Run("no address yields empty city", func() {
		s.Empty((&models.Contact{}).City())
	})
}

func (s *ScheduleSuite) TestDirectorySnapshot() {
	a := &models.Contact{Name: "A"}
	b := &models.Contact{Name: "B"}
	loaded := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	dir := models.NewDirectory([]*models.Contact{a, b}, "contacts.yaml", loaded)

	got := dir.Contacts()
	got[0], got[1] = got[1], got[0]
	s.Equal("A", dir.Contacts()[0].Name)
	s.Equal(2, dir.Len())
	s.Equal(loaded, dir.LoadedAt())

	var nilDir *models.Directory
	s.Zero(nilDir.Len())
	s.Nil(nilDir.Contacts())
}
