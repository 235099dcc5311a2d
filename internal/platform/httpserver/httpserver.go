package httpserver

import (
	"net/http"
	"time"
)

// handlerGrace is how much longer the server waits on a write than the
// request timeout middleware, so the middleware's 504 reaches the client.
const handlerGrace = 5 * time.Second

// New builds the hotline HTTP server. requestTimeout is the handler budget
// enforced by middleware; zero keeps a 30s write timeout.
func New(addr string, handler http.Handler, requestTimeout time.Duration) *http.Server {
	writeTimeout := 30 * time.Second
	if requestTimeout > 0 {
		writeTimeout = requestTimeout + handlerGrace
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}
}
