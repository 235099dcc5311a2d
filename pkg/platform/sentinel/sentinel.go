package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores, loaders and transport
// clients return these (optionally wrapped) so services can translate them into
// domain errors.
//
//   - ErrNotFound: key or record does not exist in the store
//   - ErrAlreadyUsed: a one-shot claim (follow-up SMS for a call) was taken
//   - ErrInvalidState: record in the wrong state for the requested operation
//   - ErrUnavailable: downstream service temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrAlreadyUsed  = errors.New("already used")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
