// Package requesttime captures one "now" per HTTP request. Contact availability,
// ranking and session timestamps all read this value, so a single request sees a
// consistent clock.
package requesttime

import (
	"net/http"
	"time"

	"hotline/pkg/requestcontext"
)

// Middleware stamps each request with now(). A nil clock uses time.Now.
func Middleware(now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithTime(r.Context(), now())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
