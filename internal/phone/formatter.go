package phone

import (
	"context"
	"log/slog"

	"hotline/pkg/requestcontext"
)

const (
	styleSpeech = "speech"
	styleText   = "text"
)

// Formatter wraps ForSpeech and ForText and reports malformed numbers to
// the log and metrics instead of the caller.
type Formatter struct {
	logger  *slog.Logger
	metrics *Metrics
}

type Option func(*Formatter)

func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		f.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(f *Formatter) {
		f.metrics = m
	}
}

func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{logger: slog.Default()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Formatter) Speech(ctx context.Context, raw string) string {
	out, ok := ForSpeech(raw)
	if !ok {
		f.anomaly(ctx, styleSpeech, raw)
	}
	return out
}

func (f *Formatter) Text(ctx context.Context, raw string) string {
	out, ok := ForText(raw)
	if !ok {
		f.anomaly(ctx, styleText, raw)
	}
	return out
}

func (f *Formatter) anomaly(ctx context.Context, style, raw string) {
	if f.logger != nil {
		f.logger.WarnContext(ctx, "phone number not formatted",
			"style", style,
			"phone", raw,
			"digits", len(Digits(raw)),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	if f.metrics != nil {
		f.metrics.IncrementAnomaly(style)
	}
}
