package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/demo-api/internal/api/middleware"
	"github.com/phrazzld/demo-api/internal/api/shared"
	"github.com/phrazzld/demo-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenTraceID string
	var seenLogger *slog.Logger
	handler := middleware.TraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		seenLogger = logger.FromContextOrDefault(r.Context(), nil)
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses", nil))

	require.NotEmpty(t, seenTraceID)
	require.NotNil(t, seenLogger)
	assert.Equal(t, seenTraceID, rec.Header().Get(shared.TraceIDHeader))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	var completed map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &completed))
	assert.Equal(t, "request completed", completed["msg"])
	assert.Equal(t, seenTraceID, completed["trace_id"])
	assert.Equal(t, float64(http.StatusTeapot), completed["status"])
}

func TestTraceMiddlewareUniqueIDs(t *testing.T) {
	handler := middleware.TraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	second := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(shared.TraceIDHeader), second.Header().Get(shared.TraceIDHeader))
}

func TestRecoverer(t *testing.T) {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		panicV  any
		wantMsg string
	}{
		{"error value", errors.New("boom"), "boom"},
		{"string value", "kaput", "panic: kaput"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var handled error
			handle := func(w http.ResponseWriter, r *http.Request, err error) {
				handled = err
				w.WriteHeader(http.StatusInternalServerError)
			}
			handler := middleware.Recoverer(handle)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tc.panicV)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), quiet))
			rec := httptest.NewRecorder()

			assert.NotPanics(t, func() { handler.ServeHTTP(rec, req) })
			require.Error(t, handled)
			assert.Equal(t, tc.wantMsg, handled.Error())
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
		})
	}
}

func TestRecovererRepanicsOnAbort(t *testing.T) {
	handler := middleware.Recoverer(func(http.ResponseWriter, *http.Request, error) {})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
