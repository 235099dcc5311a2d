package handler

import (
	"strings"

	"hotline/internal/notify/service"
	"hotline/internal/routing"
	dErrors "hotline/pkg/domain-errors"
)

// FollowUpRequest is the body of POST /v1/sms/follow-up. Criteria fields
// sit at the top level next to the addressing fields.
type FollowUpRequest struct {
	CallSID string `json:"call_sid"`
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	routing.Criteria
}

func (r *FollowUpRequest) Validate() error {
	r.CallSID = strings.TrimSpace(r.CallSID)
	r.To = strings.TrimSpace(r.To)
	r.From = strings.TrimSpace(r.From)
	if r.CallSID == "" {
		return dErrors.Field("call_sid", "is required")
	}
	if r.To == "" {
		return dErrors.Field("to", "is required")
	}
	return r.Criteria.Validate()
}

func (r *FollowUpRequest) ToService() service.FollowUpRequest {
	return service.FollowUpRequest{
		CallSID:  r.CallSID,
		To:       r.To,
		From:     r.From,
		Criteria: r.Criteria,
	}
}
