package testutil

import (
	"net/http"
	"time"

	"hotline/pkg/requestcontext"
)

// WithRequestTime pins the request-scoped clock, as the requesttime
// middleware would in production. Handlers that resolve contacts read it to
// decide who is open.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
