package store

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"hotline/internal/directory/models"
)

// Holder publishes the current directory snapshot. Readers take the pointer
// once per request and keep using that snapshot; a reload swaps in a whole
// new Directory, so no reader ever sees a half-applied change.
type Holder struct {
	path    string
	logger  *slog.Logger
	now     func() time.Time
	onSwap  func(*models.Directory)
	current atomic.Pointer[models.Directory]

	reloadMu sync.Mutex
}

type Option func(*Holder)

func WithLogger(logger *slog.Logger) Option {
	return func(h *Holder) {
		h.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(h *Holder) {
		h.now = now
	}
}

// WithSwapHook registers a callback run after every successful swap.
func WithSwapHook(fn func(*models.Directory)) Option {
	return func(h *Holder) {
		h.onSwap = fn
	}
}

// NewHolder creates a holder for the file at path. It starts with an empty
// directory; call Reload to load the file.
func NewHolder(path string, opts ...Option) *Holder {
	h := &Holder{
		path:   path,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.current.Store(models.NewDirectory(nil, path, time.Time{}))
	return h
}

func (h *Holder) Path() string {
	return h.path
}

// Current returns the published snapshot. It is never nil.
func (h *Holder) Current() *models.Directory {
	return h.current.Load()
}

// Swap publishes dir and returns the snapshot it replaced.
func (h *Holder) Swap(dir *models.Directory) *models.Directory {
	old := h.current.Swap(dir)
	if h.onSwap != nil {
		h.onSwap(dir)
	}
	return old
}

// Reload reads the file again. On failure the previous snapshot stays
// published and the error is returned.
func (h *Holder) Reload(ctx context.Context) (*models.Directory, error) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	dir, err := LoadFile(h.path, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "directory reload failed; keeping previous snapshot",
			"path", h.path,
			"error", err,
		)
		return nil, err
	}

	old := h.Swap(dir)
	h.logger.InfoContext(ctx, "directory loaded",
		"path", h.path,
		"contacts", dir.Len(),
		"previous_contacts", old.Len(),
	)
	return dir, nil
}
