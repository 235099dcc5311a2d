package routing

import (
	"time"
	_ "time/tzdata" // the zone must resolve on hosts without a zoneinfo database

	"hotline/internal/directory/models"
)

// DirectoryZone is the zone every hours string in the directory is written in.
const DirectoryZone = "America/Los_Angeles"

var pacific = mustLoadLocation(DirectoryZone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("routing: load " + name + ": " + err.Error())
	}
	return loc
}

// Pacific returns the directory's time zone.
func Pacific() *time.Location {
	return pacific
}

// IsOpen reports whether c is taking calls at instant. Unparsed hours are
// closed, which pushes the caller toward a 24/7 alternative.
func IsOpen(c *models.Contact, instant time.Time) bool {
	if c == nil {
		return false
	}
	return ScheduleOpen(c.ParsedSchedule(), instant)
}

// ScheduleOpen evaluates a parsed schedule at instant, using the seasonal
// Pacific offset in effect at that instant.
func ScheduleOpen(s models.Schedule, instant time.Time) bool {
	switch s.Kind {
	case models.ScheduleAlwaysOpen:
		return true
	case models.ScheduleWeekly:
		local := instant.In(pacific)
		offset := sinceMidnight(local)
		day := local.Weekday()
		if s.Open >= s.Close && offset < s.Close {
			// Early-morning tail of an overnight window opened yesterday.
			day = (day + 6) % 7
		}
		return s.IncludesDay(day) && s.IncludesTime(offset)
	default:
		return false
	}
}

// NextOpening returns the next instant at or after from when a weekly
// schedule opens. It reports false for always-open and unparsed schedules.
func NextOpening(s models.Schedule, from time.Time) (time.Time, bool) {
	if s.Kind != models.ScheduleWeekly {
		return time.Time{}, false
	}
	local := from.In(pacific)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, pacific)
	for i := 0; i < 8; i++ {
		day := midnight.AddDate(0, 0, i)
		if !s.IncludesDay(day.Weekday()) {
			continue
		}
		open := time.Date(day.Year(), day.Month(), day.Day(),
			int(s.Open.Hours()), int(s.Open.Minutes())%60, 0, 0, pacific)
		if !open.Before(local) {
			return open, true
		}
	}
	return time.Time{}, false
}

func sinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}
