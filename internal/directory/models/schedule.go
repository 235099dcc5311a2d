package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ScheduleKind is the closed set of hour shapes the router understands.
type ScheduleKind uint8

const (
	scheduleUnset ScheduleKind = iota
	// ScheduleAlwaysOpen covers "24/7" and "24 hours".
	ScheduleAlwaysOpen
	// ScheduleWeekly is a weekday range paired with a daily open/close time.
	ScheduleWeekly
	// ScheduleUnparsed is any other text. It is treated as closed.
	ScheduleUnparsed
)

func (k ScheduleKind) String() string {
	switch k {
	case ScheduleAlwaysOpen:
		return "always_open"
	case ScheduleWeekly:
		return "weekly"
	case ScheduleUnparsed:
		return "unparsed"
	}
	return "unset"
}

// Schedule is the parsed form of a contact's hours text. Open and Close are
// offsets from local midnight in the directory's time zone.
type Schedule struct {
	Kind     ScheduleKind
	FirstDay time.Weekday
	LastDay  time.Weekday
	Open     time.Duration
	Close    time.Duration
	Raw      string
}

func (s Schedule) IsSet() bool {
	return s.Kind != scheduleUnset
}

// IncludesDay reports whether d falls in the weekday range. Ranges may wrap
// past Saturday ("Fri-Mon").
func (s Schedule) IncludesDay(d time.Weekday) bool {
	if s.FirstDay <= s.LastDay {
		return d >= s.FirstDay && d <= s.LastDay
	}
	return d >= s.FirstDay || d <= s.LastDay
}

// IncludesTime reports whether offset lies in [Open, Close). A Close at or
// before Open is an overnight window.
func (s Schedule) IncludesTime(offset time.Duration) bool {
	if s.Open < s.Close {
		return offset >= s.Open && offset < s.Close
	}
	return offset >= s.Open || offset < s.Close
}

func (s Schedule) String() string {
	switch s.Kind {
	case ScheduleAlwaysOpen:
		return "24/7"
	case ScheduleWeekly:
		return fmt.Sprintf("%s-%s %s-%s", s.FirstDay.String()[:3], s.LastDay.String()[:3],
			clock(s.Open), clock(s.Close))
	}
	return s.Raw
}

func clock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

var (
	dayRangePattern = regexp.MustCompile(
		`\b(mon|tue|wed|thu|fri|sat|sun)[a-z]*\.?\s*(?:-|–|to|through|thru)\s*(mon|tue|wed|thu|fri|sat|sun)[a-z]*\.?`)
	timeRangePattern = regexp.MustCompile(
		`(\d{1,2})(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)?\s*(?:-|–|to)\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)?`)

	weekdays = map[string]time.Weekday{
		"sun": time.Sunday,
		"mon": time.Monday,
		"tue": time.Tuesday,
		"wed": time.Wednesday,
		"thu": time.Thursday,
		"fri": time.Friday,
		"sat": time.Saturday,
	}
)

// ParseSchedule turns an hours description into a Schedule. It never fails:
// text it does not recognize becomes ScheduleUnparsed.
//
//	"24/7"                    -> always open
//	"Mon-Fri 8:00-17:00"      -> weekly Mon..Fri 08:00-17:00
//	"Monday-Friday, 8 AM - 5 PM" -> weekly Mon..Fri 08:00-17:00
//	"Varies, call for intake." -> unparsed
func ParseSchedule(hours string) Schedule {
	lower := strings.ToLower(strings.TrimSpace(hours))
	if strings.Contains(lower, "24/7") || strings.Contains(lower, "24 hours") {
		return Schedule{Kind: ScheduleAlwaysOpen, Raw: hours}
	}

	unparsed := Schedule{Kind: ScheduleUnparsed, Raw: hours}

	dayLoc := dayRangePattern.FindStringSubmatchIndex(lower)
	if dayLoc == nil {
		return unparsed
	}
	first := weekdays[lower[dayLoc[2]:dayLoc[3]]]
	last := weekdays[lower[dayLoc[4]:dayLoc[5]]]

	m := timeRangePattern.FindStringSubmatch(lower[dayLoc[1]:])
	if m == nil {
		return unparsed
	}
	open, ok := timeOfDay(m[1], m[2], m[3])
	if !ok {
		return unparsed
	}
	closing, ok := timeOfDay(m[4], m[5], m[6])
	if !ok {
		return unparsed
	}
	// "8-5" with no meridiem means 8 AM to 5 PM.
	if m[3] == "" && m[6] == "" && closing <= open && closing < 12*time.Hour {
		closing += 12 * time.Hour
	}

	return Schedule{
		Kind:     ScheduleWeekly,
		FirstDay: first,
		LastDay:  last,
		Open:     open,
		Close:    closing,
		Raw:      hours,
	}
}

func timeOfDay(hourText, minuteText, meridiem string) (time.Duration, bool) {
	h, err := strconv.Atoi(hourText)
	if err != nil {
		return 0, false
	}
	minute := 0
	if minuteText != "" {
		minute, err = strconv.Atoi(minuteText)
		if err != nil || minute > 59 {
			return 0, false
		}
	}

	switch strings.ReplaceAll(meridiem, ".", "") {
	case "am":
		if h < 1 || h > 12 {
			return 0, false
		}
		if h == 12 {
			h = 0
		}
	case "pm":
		if h < 1 || h > 12 {
			return 0, false
		}
		if h != 12 {
			h += 12
		}
	default:
		if h > 24 || (h == 24 && minute != 0) {
			return 0, false
		}
	}
	return time.Duration(h)*time.Hour + time.Duration(minute)*time.Minute, true
}
