package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/demo-api/internal/platform/logger"
)

// ErrorHandler writes the response for a failed request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Recoverer turns a panic inside next into an error passed to handle, so a
// panicking handler still answers with the regular error envelope.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recoverer(handle ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// ALLOW-PANIC: net/http sentinel must propagate
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}
				logger.FromContext(r.Context()).Error("recovered from panic",
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()))
				handle(w, r, err)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
