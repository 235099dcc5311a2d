package message

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotline/internal/directory/models"
)

func TestComposeVoice(t *testing.T) {
	script, err := ComposeVoice([]*models.Contact{wsu()}, Options{})
	require.NoError(t, err)

	want := "The best contact for you is Washington State University Veterinary Teaching Hospital. " +
		"They're available twenty-four seven. " +
		"The number is: 5 0 9, 3 3 5, 0 7 1 1. " +
		"Again, that's 5 0 9, 3 3 5, 0 7 1 1. " +
		"They're in Pullman. " +
		"Call them first to coordinate your arrival."
	assert.Equal(t, want, script)
}

func TestComposeVoiceAvailability(t *testing.T) {
	region := &models.Contact{Name: "WDFW Eastern Region", Phone: "509-892-1001", Hours: "Mon-Fri 8-5"}
	// Saturday 2025-01-18 10:00 PST.
	saturday := time.Date(2025, 1, 18, 18, 0, 0, 0, time.UTC)
	// Wednesday 2025-01-15 10:00 PST.
	wednesday := time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC)

	script, err := ComposeVoice([]*models.Contact{region}, Options{Now: saturday})
	require.NoError(t, err)
	assert.Contains(t, script, "Washington Department of Fish and Wildlife Eastern Region")
	assert.Contains(t, script, "They're closed right now and open again Monday at 8:00 AM.")

	script, err = ComposeVoice([]*models.Contact{region}, Options{Now: wednesday})
	require.NoError(t, err)
	assert.Contains(t, script, "They're open right now.")

	script, err = ComposeVoice([]*models.Contact{region}, Options{})
	require.NoError(t, err)
	assert.NotContains(t, script, "right now")

	intake := &models.Contact{Name: "Rehab", Phone: "509-450-7016", Hours: "Call for intake"}
	script, err = ComposeVoice([]*models.Contact{intake}, Options{Now: wednesday})
	require.NoError(t, err)
	assert.Contains(t, script, "Call ahead to check their hours.")
}

func TestComposeVoiceRabies(t *testing.T) {
	script, err := ComposeVoice([]*models.Contact{wsu()}, Options{RabiesVector: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(script, "Please do not touch or handle this animal"))
	assert.Contains(t, script, "bitten or scratched")
}

func TestComposeVoice911(t *testing.T) {
	script, err := ComposeVoice([]*models.Contact{{Name: "Washington State Patrol", Phone: "911", Hours: "24/7"}}, Options{})
	require.NoError(t, err)
	assert.Contains(t, script, "The number is: nine one one. Again, that's nine one one.")
}

func TestComposeChat(t *testing.T) {
	backup := &models.Contact{Name: "Pet Emergency Clinic", Phone: "509-326-6670", Hours: "24 hours"}
	primary := wsu()
	primary.Email = "wildlife@example.org"

	md, err := ComposeChat([]*models.Contact{primary, backup}, Options{RabiesVector: true, Reference: "C9D0E"})
	require.NoError(t, err)

	assert.Contains(t, md, "### Primary Contact\n\n**WSU Veterinary Teaching Hospital**\n")
	assert.Contains(t, md, "- **Phone**: [509-335-0711](tel:+15093350711)\n")
	assert.Contains(t, md, "- **Location**: Pullman, WA\n")
	assert.Contains(t, md, "- **Email**: wildlife@example.org\n")
	assert.Contains(t, md, "- **Website**: [hospital.vetmed.wsu.edu](https://hospital.vetmed.wsu.edu)\n")
	assert.Contains(t, md, "### Backup Contacts\n\n- **Pet Emergency Clinic**: [509-326-6670](tel:+15093266670) (24 hours)\n")
	assert.Contains(t, md, "[800-231-4476](tel:+18002314476)")
	assert.Contains(t, md, StatewideDirectoryURL)
	assert.Contains(t, md, "Reference: #C9D0E")
}

func TestTelLink(t *testing.T) {
	assert.Equal(t, "[911](tel:911)", telLink("911"))
	assert.Equal(t, "call the desk", telLink("call the desk"))
	assert.Equal(t, "[509-335-0711](tel:+15093350711)", telLink("(509) 335-0711"))
}

func TestRender(t *testing.T) {
	contacts := []*models.Contact{wsu()}

	t.Run("dispatches by channel", func(t *testing.T) {
		sms, err := Render(ChannelSMS, contacts, Options{})
		require.NoError(t, err)
		assert.Contains(t, sms, "509-335-0711")

		voice, err := Render(ChannelVoice, contacts, Options{})
		require.NoError(t, err)
		assert.Contains(t, voice, "5 0 9, 3 3 5, 0 7 1 1")

		chat, err := Render(ChannelChat, contacts, Options{})
		require.NoError(t, err)
		assert.Contains(t, chat, "### Primary Contact")
	})

	t.Run("empty results point to the statewide directory", func(t *testing.T) {
		sms, err := Render(ChannelSMS, nil, Options{})
		require.NoError(t, err)
		assert.Equal(t, NoMatchSMS(""), sms)

		voice, err := Render(ChannelVoice, nil, Options{})
		require.NoError(t, err)
		assert.Equal(t, NoMatchVoice(), voice)

		chat, err := Render(ChannelChat, nil, Options{})
		require.NoError(t, err)
		assert.Contains(t, chat, StatewideDirectoryURL)
	})

	assert.True(t, ChannelChat.IsValid())
	assert.False(t, Channel("fax").IsValid())
}
