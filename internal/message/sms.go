package message

import (
	"strings"
	"unicode/utf8"

	"hotline/internal/directory/models"
	"hotline/internal/phone"
	textutil "hotline/pkg/platform/strings"
)

// MaxSMSLength is the hard budget for a follow-up text.
const MaxSMSLength = 300

const (
	minHoursLength = 8
	minNameLength  = 12
	minCityLength  = 8
)

// ComposeSMS builds the follow-up text for the top-ranked contact:
//
//	WSU Veterinary Teaching Hospital (24/7)
//	509-335-0711
//	Pullman - Call first
//
//	Safety: Don't touch animal
//	Keep distance, observe
//
//	More: wdfw.wa.gov/wildlife
//
// The body never exceeds MaxSMSLength characters. Long hours text is cut
// first, then the name, then the city.
func ComposeSMS(contacts []*models.Contact, opts Options) (string, error) {
	if len(contacts) == 0 {
		return "", ErrNoContacts
	}
	c := contacts[0]

	number, _ := phone.ForText(c.Phone)
	render := smsBody
	if opts.RabiesVector {
		render = rabiesSMSBody
	}

	name, hours, city := displayName(c), displayHours(c), c.City()
	body := render(name, hours, number, city)

	if over := utf8.RuneCountInString(body) - MaxSMSLength; over > 0 {
		hours = shorten(hours, over, minHoursLength)
		body = render(name, hours, number, city)
	}
	if over := utf8.RuneCountInString(body) - MaxSMSLength; over > 0 {
		name = shorten(name, over, minNameLength)
		body = render(name, hours, number, city)
	}
	if over := utf8.RuneCountInString(body) - MaxSMSLength; over > 0 {
		city = shorten(city, over, minCityLength)
		body = render(name, hours, number, city)
	}
	// Only a phone field that is not a phone number can still be over budget.
	body = textutil.Truncate(body, MaxSMSLength)

	return withReference(body, opts.Reference), nil
}

// shorten cuts s by over runes but never below floor.
func shorten(s string, over, floor int) string {
	return textutil.Truncate(s, max(utf8.RuneCountInString(s)-over, floor))
}

// NoMatchSMS is sent when resolution came back empty.
func NoMatchSMS(reference string) string {
	body := "No local contact matched.\n" +
		"Find a licensed rehabber:\n" +
		StatewideDirectoryURL + "\n\n" +
		"Danger to people? Call 911"
	return withReference(body, reference)
}

func smsBody(name, hours, number, city string) string {
	var b strings.Builder
	b.WriteString(name + " (" + hours + ")\n")
	b.WriteString(number + "\n")
	if city != "" {
		b.WriteString(city + " - ")
	}
	b.WriteString("Call first\n\n")
	b.WriteString("Safety: Don't touch animal\nKeep distance, observe\n\n")
	b.WriteString("More: " + shortLink)
	return b.String()
}

func rabiesSMSBody(name, hours, number, city string) string {
	var b strings.Builder
	b.WriteString("SAFETY: Do NOT touch animal!\n\n")
	b.WriteString(name + " (" + hours + ")\n")
	b.WriteString(number + "\n")
	if city != "" {
		b.WriteString(city + " - ")
	}
	b.WriteString("Call first\n\n")
	b.WriteString("If bitten/scratched:\nGo to ER immediately\nThen call: " + rabiesLine + "\n(WA Rabies Info)\n\n")
	b.WriteString("Keep people/pets away\nKeep distance, observe\n\n")
	b.WriteString("More: " + shortLink)
	return b.String()
}

func withReference(body, reference string) string {
	if reference == "" {
		return body
	}
	withRef := body + "\nRef: #" + reference
	if utf8.RuneCountInString(withRef) > MaxSMSLength {
		return body
	}
	return withRef
}
