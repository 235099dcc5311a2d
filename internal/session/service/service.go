// Package service records what the hotline learns during a call.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"hotline/internal/phone"
	"hotline/internal/session/models"
	dErrors "hotline/pkg/domain-errors"
	"hotline/pkg/platform/sentinel"
	"hotline/pkg/requestcontext"
)

// Store is the persistence the service needs.
type Store interface {
	Get(ctx context.Context, callSID string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
}

type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the session for a call, or a not-found error.
func (s *Service) Get(ctx context.Context, callSID string) (*models.Session, error) {
	callSID = strings.TrimSpace(callSID)
	if callSID == "" {
		return nil, dErrors.Field("call_sid", "is required")
	}
	session, err := s.store.Get(ctx, callSID)
	if err != nil {
		return nil, translate(err, "session")
	}
	return session, nil
}

// Record applies u to the call's session, creating the session on first
// use. Caller and hotline numbers are stored in E.164.
func (s *Service) Record(ctx context.Context, callSID string, u models.Update) (*models.Session, error) {
	callSID = strings.TrimSpace(callSID)
	if callSID == "" {
		return nil, dErrors.Field("call_sid", "is required")
	}
	if err := normalizeNumber(&u.CallerNumber, "caller_number"); err != nil {
		return nil, err
	}
	if err := normalizeNumber(&u.HotlineNumber, "hotline_number"); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	session, err := s.store.Get(ctx, callSID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		session = models.New(callSID, now)
	case err != nil:
		return nil, translate(err, "session")
	}

	session.Apply(u, now)
	if err := s.store.Save(ctx, session); err != nil {
		return nil, translate(err, "session")
	}

	s.logger.InfoContext(ctx, "call session recorded",
		"request_id", requestcontext.RequestID(ctx),
		"call_sid", callSID,
		"offered_contacts", len(session.OfferedContacts),
		"sms_opt_in", session.SMSOptIn,
	)
	return session, nil
}

func normalizeNumber(number **string, field string) error {
	if *number == nil || strings.TrimSpace(**number) == "" {
		return nil
	}
	e164, err := phone.NormalizeE164(**number)
	if err != nil {
		return dErrors.Field(field, "must be a valid North American phone number")
	}
	*number = &e164
	return nil
}

func translate(err error, what string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, what+" not found")
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, what+" store unavailable")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, what+" store failed")
	}
}
