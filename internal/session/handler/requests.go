package handler

import (
	"hotline/internal/session/models"
	dErrors "hotline/pkg/domain-errors"
	textutil "hotline/pkg/platform/strings"
)

const maxOfferedContacts = 20

// RecordRequest is the body of PUT /v1/sessions/{callSID}. Omitted fields
// leave the stored value unchanged.
type RecordRequest struct {
	CallerNumber    *string  `json:"caller_number"`
	HotlineNumber   *string  `json:"hotline_number"`
	County          *string  `json:"county"`
	AnimalType      *string  `json:"animal_type"`
	RabiesVector    *bool    `json:"rabies_vector"`
	SMSOptIn        *bool    `json:"sms_opt_in"`
	OfferedContacts []string `json:"offered_contacts"`
}

func (r *RecordRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.OfferedContacts) > maxOfferedContacts {
		return dErrors.Field("offered_contacts", "too many entries")
	}
	r.OfferedContacts = textutil.DedupeAndTrim(r.OfferedContacts)
	return nil
}

func (r *RecordRequest) Update() models.Update {
	return models.Update{
		CallerNumber:    r.CallerNumber,
		HotlineNumber:   r.HotlineNumber,
		County:          r.County,
		AnimalType:      r.AnimalType,
		RabiesVector:    r.RabiesVector,
		SMSOptIn:        r.SMSOptIn,
		OfferedContacts: r.OfferedContacts,
	}
}
