package handler

import (
	"time"

	"hotline/internal/message"
	"hotline/internal/notify/models"
	"hotline/internal/routing"
)

type FollowUpResponse struct {
	CallSID    string           `json:"call_sid"`
	MessageSID string           `json:"message_sid"`
	Status     string           `json:"status"`
	Reference  string           `json:"reference"`
	Contact    string           `json:"contact,omitempty"`
	Stage      routing.Stage    `json:"stage"`
	Segments   message.Segments `json:"segments"`
	Body       string           `json:"body"`
	SentAt     time.Time        `json:"sent_at"`
}

func toFollowUpResponse(f *models.FollowUp) FollowUpResponse {
	return FollowUpResponse{
		CallSID:    f.CallSID,
		MessageSID: f.MessageSID,
		Status:     f.Status,
		Reference:  f.Reference,
		Contact:    f.Contact,
		Stage:      f.Stage,
		Segments:   f.Segments,
		Body:       f.Body,
		SentAt:     f.SentAt,
	}
}
