// internal/server/timeouts.go
//
// Hardened http.Server constructor.
//
// Context
// -------
// Velta serves rendered pages and two small JSON endpoints from one
// listener.  The timeouts cap slow-loris headers (read), runaway
// renders (write), and idle keep-alives, so the listener drains cleanly
// inside cmd/web's shutdown grace window.
package server

import (
	"net/http"
	"time"
)

// Defaults applied to every listener.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// New constructs an *http.Server with the hardened defaults.  Callers
// may still set TLSConfig or ErrorLog before serving.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
}
