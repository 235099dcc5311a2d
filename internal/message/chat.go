package message

import (
	"fmt"
	"strings"

	"hotline/internal/directory/models"
	"hotline/internal/phone"
)

// ComposeChat renders the shortlist as markdown: the primary contact in
// full, the others as backups, then safety guidance and resources.
func ComposeChat(contacts []*models.Contact, opts Options) (string, error) {
	if len(contacts) == 0 {
		return "", ErrNoContacts
	}
	primary := contacts[0]

	var b strings.Builder
	b.WriteString("### Primary Contact\n\n")
	fmt.Fprintf(&b, "**%s**\n", displayName(primary))
	fmt.Fprintf(&b, "- **Phone**: %s\n", telLink(primary.Phone))
	if primary.EmergencyPhone != "" {
		fmt.Fprintf(&b, "- **Emergency**: %s\n", telLink(primary.EmergencyPhone))
	}
	fmt.Fprintf(&b, "- **Hours**: %s\n", displayHours(primary))
	if city := primary.City(); city != "" {
		fmt.Fprintf(&b, "- **Location**: %s, WA\n", city)
	}
	if primary.Email != "" {
		fmt.Fprintf(&b, "- **Email**: %s\n", primary.Email)
	}
	if primary.URL != "" {
		fmt.Fprintf(&b, "- **Website**: [%s](%s)\n", strings.TrimPrefix(strings.TrimPrefix(primary.URL, "https://"), "http://"), primary.URL)
	}
	if primary.Notes != "" {
		fmt.Fprintf(&b, "\n%s\n", primary.Notes)
	}
	b.WriteString("\n**Call ahead to coordinate your arrival.**\n")

	if len(contacts) > 1 {
		b.WriteString("\n### Backup Contacts\n\n")
		for _, c := range contacts[1:] {
			fmt.Fprintf(&b, "- **%s**: %s (%s)\n", displayName(c), telLink(c.Phone), displayHours(c))
		}
	}

	b.WriteString("\n### Safety Instructions\n\n")
	b.WriteString("**Important: Do not touch or approach the animal.**\n")
	b.WriteString("- Keep your distance (at least 50 feet)\n")
	b.WriteString("- Observe from your vehicle if possible\n")
	b.WriteString("- Do not attempt to feed or give water\n")
	if opts.RabiesVector {
		fmt.Fprintf(&b, "- **Rabies risk**: if anyone was bitten or scratched, go to an ER now, then call %s (WA Rabies Info)\n",
			telLink(rabiesLine))
	}

	b.WriteString("\n### Additional Resources\n\n")
	fmt.Fprintf(&b, "- [WDFW Wildlife Rehabilitation Directory](%s)\n", StatewideDirectoryURL)
	if opts.Reference != "" {
		fmt.Fprintf(&b, "\nReference: #%s\n", opts.Reference)
	}
	return b.String(), nil
}

// NoMatchChat is rendered when resolution came back empty.
func NoMatchChat() string {
	return "### No Local Contact Found\n\n" +
		"We couldn't match a local contact for this situation.\n\n" +
		"- Search the [WDFW Wildlife Rehabilitation Directory](" + StatewideDirectoryURL + ")\n" +
		"- If anyone is in danger, call **911**\n"
}

// telLink renders a clickable number, or the raw text when it cannot be
// dialed.
func telLink(raw string) string {
	text, ok := phone.ForText(raw)
	if !ok {
		return raw
	}
	if text == "911" {
		return "[911](tel:911)"
	}
	e164, err := phone.NormalizeE164(raw)
	if err != nil {
		return text
	}
	return fmt.Sprintf("[%s](tel:%s)", text, e164)
}
