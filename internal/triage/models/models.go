// Package models holds the read models the triage API returns.
package models

import (
	"time"

	dirModels "hotline/internal/directory/models"
	"hotline/internal/message"
	"hotline/internal/routing"
)

// ContactView is one ranked contact as a caller-facing surface needs it.
type ContactView struct {
	Name           string                  `json:"name"`
	Phone          string                  `json:"phone"`
	SpokenPhone    string                  `json:"spoken_phone"`
	EmergencyPhone string                  `json:"emergency_phone,omitempty"`
	Hours          string                  `json:"hours"`
	OpenNow        bool                    `json:"open_now"`
	NextOpening    *time.Time              `json:"next_opening,omitempty"`
	Services       []dirModels.ServiceKind `json:"services"`
	Coverage       []string                `json:"coverage"`
	Address        string                  `json:"address,omitempty"`
	URL            string                  `json:"url,omitempty"`
}

// Resolution is the outcome of one triage lookup.
type Resolution struct {
	Stage    routing.Stage   `json:"stage"`
	Escalate bool            `json:"escalate"`
	Contacts []ContactView   `json:"contacts"`
	Channel  message.Channel `json:"channel"`
	Message  string          `json:"message"`
	// Reference is set when the lookup belongs to a call.
	Reference  string    `json:"reference,omitempty"`
	ResolvedAt time.Time `json:"resolved_at"`
}

type Health struct {
	Status   string    `json:"status"`
	Contacts int       `json:"contacts"`
	Source   string    `json:"source,omitempty"`
	LoadedAt time.Time `json:"loaded_at"`
}

const (
	HealthOK       = "ok"
	HealthDegraded = "degraded"
)

type ReloadResult struct {
	Contacts int       `json:"contacts"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}
