// Package service sends the single follow-up text a caller may opt into at
// the end of a call.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	dirModels "hotline/internal/directory/models"
	"hotline/internal/message"
	"hotline/internal/notify/metrics"
	"hotline/internal/notify/models"
	"hotline/internal/phone"
	"hotline/internal/routing"
	sessionModels "hotline/internal/session/models"
	dErrors "hotline/pkg/domain-errors"
	"hotline/pkg/platform/circuit"
	"hotline/pkg/platform/sentinel"
	"hotline/pkg/requestcontext"
)

// Sender delivers one text through an SMS provider. Transient provider
// failures must wrap sentinel.ErrUnavailable.
type Sender interface {
	Send(ctx context.Context, msg models.Message) (*models.Receipt, error)
}

// SessionStore persists call sessions and the once-per-call SMS claim.
type SessionStore interface {
	Get(ctx context.Context, callSID string) (*sessionModels.Session, error)
	Save(ctx context.Context, session *sessionModels.Session) error
	ClaimSMS(ctx context.Context, callSID string) error
	ReleaseSMS(ctx context.Context, callSID string) error
}

// DirectorySource yields the current directory snapshot.
type DirectorySource interface {
	Current() *dirModels.Directory
}

// FollowUpRequest asks for the follow-up text of one call. Empty criteria
// fields are filled from what the call session recorded.
type FollowUpRequest struct {
	CallSID  string
	To       string
	From     string
	Criteria routing.Criteria
}

type Service struct {
	sender     Sender
	sessions   SessionStore
	directory  DirectorySource
	limiter    *RecipientLimiter
	breaker    *circuit.Breaker
	metrics    *metrics.Metrics
	logger     *slog.Logger
	fromNumber string
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithLimiter(l *RecipientLimiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(s *Service) {
		s.breaker = b
	}
}

// WithFromNumber sets the sender number used when a request names none.
func WithFromNumber(number string) Option {
	return func(s *Service) {
		s.fromNumber = number
	}
}

func New(sender Sender, sessions SessionStore, directory DirectorySource, opts ...Option) *Service {
	s := &Service{
		sender:    sender,
		sessions:  sessions,
		directory: directory,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendFollowUp resolves contacts for the call, composes the text and sends
// it at most once per call SID. A send that fails releases the claim so the
// caller can be retried.
func (s *Service) SendFollowUp(ctx context.Context, req FollowUpRequest) (*models.FollowUp, error) {
	requestID := requestcontext.RequestID(ctx)
	now := requestcontext.Now(ctx)

	msg, callSID, err := s.prepareAddressing(req)
	if err != nil {
		return nil, err
	}
	if err := req.Criteria.Validate(); err != nil {
		return nil, err
	}

	session, err := s.loadSession(ctx, callSID, now)
	if err != nil {
		return nil, err
	}
	if session.SMSSent {
		s.observe(metrics.OutcomeDuplicate)
		return nil, dErrors.New(dErrors.CodeConflict, "follow-up already sent for this call")
	}
	criteria := withSessionFacts(req.Criteria, session)

	if s.limiter != nil && !s.limiter.Allow(msg.To, now) {
		s.observe(metrics.OutcomeThrottled)
		s.logger.WarnContext(ctx, "follow-up throttled",
			"request_id", requestID,
			"call_sid", callSID,
		)
		return nil, dErrors.New(dErrors.CodeRateLimited, "too many texts to this number")
	}

	result := routing.Resolve(s.directory.Current(), criteria, now)
	reference := message.ReferenceNumber(callSID)
	msg.Body, err = message.Render(message.ChannelSMS, result.Contacts, message.Options{
		RabiesVector: criteria.RabiesVector,
		Reference:    reference,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to compose follow-up")
	}
	segments := message.EstimateSegments(msg.Body)
	s.logger.InfoContext(ctx, "composed follow-up",
		"request_id", requestID,
		"call_sid", callSID,
		"stage", result.Stage,
		"segments", segments.Count,
		"length", segments.Length,
		"encoding", segments.Encoding,
	)

	if err := s.sessions.ClaimSMS(ctx, callSID); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			s.observe(metrics.OutcomeDuplicate)
			return nil, dErrors.New(dErrors.CodeConflict, "follow-up already sent for this call")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "session store unavailable")
	}

	// An open breaker lets one send through per cooldown; only a request
	// that is about to send may take it.
	if s.breaker != nil && !s.breaker.Allow() {
		s.release(ctx, callSID)
		s.observe(metrics.OutcomeBreakerOpen)
		return nil, dErrors.New(dErrors.CodeUnavailable, "sms provider temporarily unavailable")
	}

	receipt, err := s.send(ctx, msg)
	if err != nil {
		s.release(ctx, callSID)
		return nil, err
	}

	followUp := &models.FollowUp{
		CallSID:    callSID,
		To:         msg.To,
		Reference:  reference,
		Body:       msg.Body,
		Segments:   segments,
		Stage:      result.Stage,
		MessageSID: receipt.SID,
		Status:     receipt.Status,
		SentAt:     now,
	}
	if primary := result.Primary(); primary != nil {
		followUp.Contact = primary.Name
		session.RecordOffered(primary.Name)
	}
	session.MarkSMSSent(now)
	if err := s.sessions.Save(ctx, session); err != nil {
		// The claim already prevents a second text.
		s.logger.ErrorContext(ctx, "failed to record sent follow-up",
			"request_id", requestID,
			"call_sid", callSID,
			"error", err,
		)
	}

	s.observe(metrics.OutcomeSent)
	if s.metrics != nil {
		s.metrics.ObserveSegments(segments.Count)
	}
	s.logger.InfoContext(ctx, "follow-up sent",
		"request_id", requestID,
		"call_sid", callSID,
		"message_sid", receipt.SID,
		"status", receipt.Status,
	)
	return followUp, nil
}

func (s *Service) prepareAddressing(req FollowUpRequest) (models.Message, string, error) {
	callSID := strings.TrimSpace(req.CallSID)
	if callSID == "" {
		return models.Message{}, "", dErrors.Field("call_sid", "is required")
	}
	to, err := phone.NormalizeE164(req.To)
	if err != nil {
		return models.Message{}, "", dErrors.Field("to", "must be a valid North American phone number")
	}
	fromRaw := req.From
	if strings.TrimSpace(fromRaw) == "" {
		fromRaw = s.fromNumber
	}
	if strings.TrimSpace(fromRaw) == "" {
		return models.Message{}, "", dErrors.Field("from", "is required")
	}
	from, err := phone.NormalizeE164(fromRaw)
	if err != nil {
		return models.Message{}, "", dErrors.Field("from", "must be a valid North American phone number")
	}
	return models.Message{To: to, From: from}, callSID, nil
}

func (s *Service) loadSession(ctx context.Context, callSID string, now time.Time) (*sessionModels.Session, error) {
	session, err := s.sessions.Get(ctx, callSID)
	switch {
	case err == nil:
		return session, nil
	case errors.Is(err, sentinel.ErrNotFound):
		return sessionModels.New(callSID, now), nil
	default:
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "session store unavailable")
	}
}

func withSessionFacts(c routing.Criteria, session *sessionModels.Session) routing.Criteria {
	if c.County == "" {
		c.County = session.County
	}
	if c.AnimalType == "" {
		c.AnimalType = dirModels.AnimalType(session.AnimalType)
	}
	c.RabiesVector = c.RabiesVector || session.RabiesVector
	return c
}

func (s *Service) send(ctx context.Context, msg models.Message) (*models.Receipt, error) {
	start := time.Now()
	receipt, err := s.sender.Send(ctx, msg)
	if s.metrics != nil {
		s.metrics.ObserveProviderLatency(time.Since(start))
	}

	if err == nil {
		s.recordProviderResult(ctx, true)
		return receipt, nil
	}

	s.logger.ErrorContext(ctx, "sms provider call failed",
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	if errors.Is(err, sentinel.ErrUnavailable) {
		s.recordProviderResult(ctx, false)
		s.observe(metrics.OutcomeFailed)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "sms provider unavailable")
	}
	// The provider answered; a rejected message says nothing about its health.
	s.recordProviderResult(ctx, true)
	s.observe(metrics.OutcomeRejected)
	return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "sms provider rejected the message")
}

func (s *Service) recordProviderResult(ctx context.Context, healthy bool) {
	if s.breaker == nil {
		return
	}
	var change circuit.StateChange
	if healthy {
		_, change = s.breaker.RecordSuccess()
	} else {
		_, change = s.breaker.RecordFailure()
	}
	switch {
	case change.Opened:
		s.logger.WarnContext(ctx, "sms circuit breaker opened", "breaker", s.breaker.Name())
	case change.Closed:
		s.logger.InfoContext(ctx, "sms circuit breaker closed", "breaker", s.breaker.Name())
	}
	if s.metrics != nil {
		s.metrics.SetBreakerOpen(s.breaker.IsOpen())
	}
}

func (s *Service) release(ctx context.Context, callSID string) {
	if err := s.sessions.ReleaseSMS(ctx, callSID); err != nil {
		s.logger.ErrorContext(ctx, "failed to release follow-up claim",
			"request_id", requestcontext.RequestID(ctx),
			"call_sid", callSID,
			"error", err,
		)
	}
}

func (s *Service) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementFollowUp(outcome)
	}
}
