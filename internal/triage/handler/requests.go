package handler

import (
	"strings"

	"hotline/internal/message"
	"hotline/internal/routing"
	"hotline/internal/triage/service"
	dErrors "hotline/pkg/domain-errors"
)

// ResolveRequest is the body of POST /v1/triage/resolve.
type ResolveRequest struct {
	CallSID string          `json:"call_sid,omitempty"`
	Channel message.Channel `json:"channel,omitempty"`
	routing.Criteria
}

func (r *ResolveRequest) Validate() error {
	r.CallSID = strings.TrimSpace(r.CallSID)
	r.County = strings.TrimSpace(r.County)
	r.Channel = message.Channel(strings.ToLower(strings.TrimSpace(string(r.Channel))))
	if r.Channel != "" && !r.Channel.IsValid() {
		return dErrors.Field("channel", "must be voice, sms or chat")
	}
	return r.Criteria.Validate()
}

func (r *ResolveRequest) ToService() service.ResolveRequest {
	return service.ResolveRequest{
		CallSID:  r.CallSID,
		Channel:  r.Channel,
		Criteria: r.Criteria,
	}
}
