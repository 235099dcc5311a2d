package message

import (
	"strings"

	"hotline/internal/directory/models"
	"hotline/internal/phone"
	"hotline/internal/routing"
)

// spokenNames expands abbreviations a speech engine would read letter by
// letter or mispronounce.
var spokenNames = strings.NewReplacer(
	"WDFW", "Washington Department of Fish and Wildlife",
	"WSU", "Washington State University",
	"SCRAPS", "Spokane County Regional Animal Protection Service",
	"DOH", "Department of Health",
	"24/7", "twenty-four seven",
	"&", "and",
)

// ComposeVoice builds the speech script for the top-ranked contact. The
// number is always said twice.
func ComposeVoice(contacts []*models.Contact, opts Options) (string, error) {
	if len(contacts) == 0 {
		return "", ErrNoContacts
	}
	c := contacts[0]
	spoken, _ := phone.ForSpeech(c.Phone)

	var b strings.Builder
	if opts.RabiesVector {
		b.WriteString("Please do not touch or handle this animal under any circumstances. ")
	}
	b.WriteString("The best contact for you is " + spokenNames.Replace(displayName(c)) + ". ")
	if s := availabilitySentence(c, opts); s != "" {
		b.WriteString(s + " ")
	}
	b.WriteString("The number is: " + spoken + ". ")
	b.WriteString("Again, that's " + spoken + ". ")
	if city := c.City(); city != "" {
		b.WriteString("They're in " + city + ". ")
	}
	b.WriteString("Call them first to coordinate your arrival.")
	if opts.RabiesVector {
		b.WriteString(" If anyone was bitten or scratched, go to urgent care or an emergency room right now.")
	}
	return b.String(), nil
}

// NoMatchVoice is spoken when resolution came back empty.
func NoMatchVoice() string {
	return "I couldn't find a local contact for this situation. " +
		"The Washington Department of Fish and Wildlife keeps a statewide list of licensed wildlife rehabilitators on its website. " +
		"If anyone is in danger, please call nine one one."
}

func availabilitySentence(c *models.Contact, opts Options) string {
	sched := c.ParsedSchedule()
	switch sched.Kind {
	case models.ScheduleAlwaysOpen:
		return "They're available twenty-four seven."
	case models.ScheduleWeekly:
		if opts.Now.IsZero() {
			return ""
		}
		if routing.ScheduleOpen(sched, opts.Now) {
			return "They're open right now."
		}
		if next, ok := routing.NextOpening(sched, opts.Now); ok {
			return "They're closed right now and open again " + next.Weekday().String() + " at " + next.Format("3:04 PM") + "."
		}
		return "They're closed right now."
	default:
		return "Call ahead to check their hours."
	}
}
