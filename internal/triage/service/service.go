// Package service answers "who should this caller be sent to" against the
// live directory and renders the answer for the caller's channel.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	dirModels "hotline/internal/directory/models"
	"hotline/internal/message"
	"hotline/internal/phone"
	"hotline/internal/routing"
	sessionModels "hotline/internal/session/models"
	"hotline/internal/triage/metrics"
	"hotline/internal/triage/models"
	dErrors "hotline/pkg/domain-errors"
	"hotline/pkg/requestcontext"
)

// Directory is the live directory: a current snapshot plus a way to
// reload it from its source.
type Directory interface {
	Current() *dirModels.Directory
	Reload(ctx context.Context) (*dirModels.Directory, error)
}

// SessionRecorder stores what a lookup told a caller.
type SessionRecorder interface {
	Record(ctx context.Context, callSID string, u sessionModels.Update) (*sessionModels.Session, error)
}

// ResolveRequest is one lookup. CallSID is optional; when set the offered
// contacts are recorded on the call session.
type ResolveRequest struct {
	CallSID  string
	Channel  message.Channel
	Criteria routing.Criteria
}

type Service struct {
	directory Directory
	sessions  SessionRecorder
	formatter *phone.Formatter
	metrics   *metrics.Metrics
	logger    *slog.Logger
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

func WithSessions(sessions SessionRecorder) Option {
	return func(s *Service) {
		s.sessions = sessions
	}
}

func WithFormatter(f *phone.Formatter) Option {
	return func(s *Service) {
		s.formatter = f
	}
}

func New(directory Directory, opts ...Option) *Service {
	s := &Service{
		directory: directory,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.formatter == nil {
		s.formatter = phone.NewFormatter(phone.WithLogger(s.logger))
	}
	return s
}

// Resolve runs the fallback ladder at the request instant and renders the
// result for the channel. Voice is the default channel.
func (s *Service) Resolve(ctx context.Context, req ResolveRequest) (*models.Resolution, error) {
	start := time.Now()
	requestID := requestcontext.RequestID(ctx)
	now := requestcontext.Now(ctx)

	if req.Channel == "" {
		req.Channel = message.ChannelVoice
	}
	if !req.Channel.IsValid() {
		return nil, dErrors.Field("channel", "must be voice, sms or chat")
	}
	if err := req.Criteria.Validate(); err != nil {
		return nil, err
	}
	callSID := strings.TrimSpace(req.CallSID)

	result := routing.Resolve(s.directory.Current(), req.Criteria, now)

	var reference string
	if callSID != "" {
		reference = message.ReferenceNumber(callSID)
	}
	text, err := message.Render(req.Channel, result.Contacts, message.Options{
		RabiesVector: req.Criteria.RabiesVector,
		Reference:    reference,
		Now:          now,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render message")
	}

	resolution := &models.Resolution{
		Stage:      result.Stage,
		Escalate:   result.Empty(),
		Contacts:   make([]models.ContactView, 0, len(result.Contacts)),
		Channel:    req.Channel,
		Message:    text,
		Reference:  reference,
		ResolvedAt: now,
	}
	for _, c := range result.Contacts {
		resolution.Contacts = append(resolution.Contacts, s.view(ctx, c, now))
	}

	if callSID != "" && s.sessions != nil {
		s.record(ctx, callSID, req.Criteria, result)
	}

	s.metrics.IncrementResolution(string(result.Stage), string(req.Channel))
	s.metrics.ObserveResolveLatency(time.Since(start))
	s.logger.InfoContext(ctx, "contacts resolved",
		"request_id", requestID,
		"call_sid", callSID,
		"county", req.Criteria.County,
		"animal_type", req.Criteria.AnimalType,
		"urgency", req.Criteria.Urgency,
		"stage", result.Stage,
		"contacts", len(result.Contacts),
	)
	return resolution, nil
}

func (s *Service) view(ctx context.Context, c *dirModels.Contact, now time.Time) models.ContactView {
	v := models.ContactView{
		Name:        c.Name,
		Phone:       s.formatter.Text(ctx, c.Phone),
		SpokenPhone: s.formatter.Speech(ctx, c.Phone),
		Hours:       c.Hours,
		OpenNow:     routing.IsOpen(c, now),
		Services:    c.Services,
		Coverage:    c.Coverage,
		Address:     c.Address,
		URL:         c.URL,
	}
	if c.EmergencyPhone != "" {
		v.EmergencyPhone = s.formatter.Text(ctx, c.EmergencyPhone)
	}
	if !v.OpenNow {
		if next, ok := routing.NextOpening(c.ParsedSchedule(), now); ok {
			v.NextOpening = &next
		}
	}
	return v
}

func (s *Service) record(ctx context.Context, callSID string, c routing.Criteria, result routing.Result) {
	u := sessionModels.Update{}
	if c.County != "" {
		u.County = &c.County
	}
	if c.AnimalType != "" {
		animal := string(c.AnimalType)
		u.AnimalType = &animal
	}
	if c.RabiesVector {
		u.RabiesVector = &c.RabiesVector
	}
	for _, ct := range result.Contacts {
		u.OfferedContacts = append(u.OfferedContacts, ct.Name)
	}
	if _, err := s.sessions.Record(ctx, callSID, u); err != nil {
		s.logger.WarnContext(ctx, "failed to record offered contacts",
			"request_id", requestcontext.RequestID(ctx),
			"call_sid", callSID,
			"error", err,
		)
	}
}

// Health describes the live directory. An empty directory is degraded:
// every lookup would escalate.
func (s *Service) Health() models.Health {
	dir := s.directory.Current()
	status := models.HealthOK
	if dir.Len() == 0 {
		status = models.HealthDegraded
	}
	return models.Health{
		Status:   status,
		Contacts: dir.Len(),
		Source:   dir.Source(),
		LoadedAt: dir.LoadedAt(),
	}
}

// ReloadDirectory re-reads the directory file. A failed reload leaves the
// previous snapshot serving.
func (s *Service) ReloadDirectory(ctx context.Context) (*models.ReloadResult, error) {
	dir, err := s.directory.Reload(ctx)
	if err != nil {
		s.metrics.IncrementReload("error")
		var de *dErrors.Error
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "directory file could not be read")
	}
	s.metrics.IncrementReload("ok")
	return &models.ReloadResult{
		Contacts: dir.Len(),
		Source:   dir.Source(),
		LoadedAt: dir.LoadedAt(),
	}, nil
}
