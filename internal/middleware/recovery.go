package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
)

type panicResponse struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

// PanicRecovery turns a handler panic into a JSON 500, so clients such as
// fitctl always get a body they can decode, and counts it.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					// client went away mid-stream (e.g. an MCP SSE session), nothing to report
					panic(r)
				}

				log.WithFields(log.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
					"panic":  r,
				}).Errorf("http: panic serving request\n%s", debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSON(respWriter, panicResponse{
					Error: "internal error",
					Path:  req.URL.Path,
				}, http.StatusInternalServerError)
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}
