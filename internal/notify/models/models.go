// Package models holds the outbound SMS types shared by the notify service,
// its transports and its HTTP handler.
package models

import (
	"time"

	"hotline/internal/message"
	"hotline/internal/routing"
)

// Message is one outbound text. To and From are E.164.
type Message struct {
	To   string
	From string
	Body string
}

// Receipt is the provider's acknowledgement of an accepted message.
type Receipt struct {
	SID    string
	Status string
}

// FollowUp describes a follow-up text that was sent for a call.
type FollowUp struct {
	CallSID    string
	To         string
	Reference  string
	Body       string
	Segments   message.Segments
	Stage      routing.Stage
	Contact    string
	MessageSID string
	Status     string
	SentAt     time.Time
}
