// Package message turns a resolved contact list into channel-ready text:
// a budgeted SMS body, a speech script for the voice channel and markdown
// for chat. Only the first contact is the referral; the rest are backups
// that only the chat renderer shows.
package message

import (
	"errors"
	"time"

	"hotline/internal/directory/models"
)

// Channel is the surface a message is rendered for.
type Channel string

const (
	ChannelVoice Channel = "voice"
	ChannelSMS   Channel = "sms"
	ChannelChat  Channel = "chat"
)

func (c Channel) IsValid() bool {
	return c == ChannelVoice || c == ChannelSMS || c == ChannelChat
}

const (
	// StatewideDirectoryURL lists every licensed rehabilitator in the state.
	// Callers are pointed here whenever nothing local matched.
	StatewideDirectoryURL = "https://wdfw.wa.gov/species-habitats/living/injured-wildlife/rehabilitation/find"
	shortLink             = "wdfw.wa.gov/wildlife"
	rabiesLine            = "800-231-4476"
)

// ErrNoContacts is returned when asked to compose a referral from an empty
// result. Use the NoMatch renderers for that case instead.
var ErrNoContacts = errors.New("message: no contacts to compose")

// Options adjust a rendered message.
type Options struct {
	// RabiesVector switches to the no-touch wording and adds the health
	// department line.
	RabiesVector bool
	// Reference is a short call reference appended to SMS bodies when it
	// fits the budget.
	Reference string
	// Now lets the voice renderer say whether the contact is open. A zero
	// value skips that sentence.
	Now time.Time
}

// Render dispatches to the channel's composer. An empty contact list
// renders the channel's statewide-directory pointer, never an error.
func Render(channel Channel, contacts []*models.Contact, opts Options) (string, error) {
	if len(contacts) == 0 {
		switch channel {
		case ChannelVoice:
			return NoMatchVoice(), nil
		case ChannelChat:
			return NoMatchChat(), nil
		default:
			return NoMatchSMS(opts.Reference), nil
		}
	}
	switch channel {
	case ChannelVoice:
		return ComposeVoice(contacts, opts)
	case ChannelChat:
		return ComposeChat(contacts, opts)
	default:
		return ComposeSMS(contacts, opts)
	}
}

func displayName(c *models.Contact) string {
	if c.Name == "" {
		return "Wildlife Contact"
	}
	return c.Name
}

func displayHours(c *models.Contact) string {
	if c.Hours == "" {
		return "Call for hours"
	}
	return c.Hours
}
