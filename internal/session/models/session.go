// Package models holds the per-call session record. A session accumulates
// what the caller told the hotline during one call so later steps (the
// follow-up text, a repeat lookup) do not depend on hidden process state.
package models

import (
	"slices"
	"time"
)

type Session struct {
	CallSID       string `json:"call_sid"`
	CallerNumber  string `json:"caller_number,omitempty"`
	HotlineNumber string `json:"hotline_number,omitempty"`

	County       string `json:"county,omitempty"`
	AnimalType   string `json:"animal_type,omitempty"`
	RabiesVector bool   `json:"rabies_vector"`

	// OfferedContacts lists contact names already given to the caller, in
	// the order they were offered.
	OfferedContacts []string `json:"offered_contacts,omitempty"`

	SMSOptIn  bool       `json:"sms_opt_in"`
	SMSSent   bool       `json:"sms_sent"`
	SMSSentAt *time.Time `json:"sms_sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(callSID string, now time.Time) *Session {
	return &Session{CallSID: callSID, CreatedAt: now, UpdatedAt: now}
}

// RecordOffered appends names not offered before.
func (s *Session) RecordOffered(names ...string) {
	for _, n := range names {
		if n != "" && !slices.Contains(s.OfferedContacts, n) {
			s.OfferedContacts = append(s.OfferedContacts, n)
		}
	}
}

func (s *Session) MarkSMSSent(at time.Time) {
	s.SMSSent = true
	s.SMSSentAt = &at
	s.UpdatedAt = at
}

// Update is a partial change to a session. Nil fields are left alone.
type Update struct {
	CallerNumber    *string
	HotlineNumber   *string
	County          *string
	AnimalType      *string
	RabiesVector    *bool
	SMSOptIn        *bool
	OfferedContacts []string
}

// Apply merges u into s and stamps UpdatedAt.
func (s *Session) Apply(u Update, now time.Time) {
	setString(&s.CallerNumber, u.CallerNumber)
	setString(&s.HotlineNumber, u.HotlineNumber)
	setString(&s.County, u.County)
	setString(&s.AnimalType, u.AnimalType)
	if u.RabiesVector != nil {
		s.RabiesVector = *u.RabiesVector
	}
	if u.SMSOptIn != nil {
		s.SMSOptIn = *u.SMSOptIn
	}
	s.RecordOffered(u.OfferedContacts...)
	s.UpdatedAt = now
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
