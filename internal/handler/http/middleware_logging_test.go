package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts l into the request context the same way withTraceID
// does.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func newTestLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	return injectLogger(httptest.NewRequest(method, path, nil), newTestLogger(buf))
}

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:             "list buses",
			method:           http.MethodGet,
			path:             "/api/buses?status=active",
			handlerStatus:    http.StatusOK,
			handlerResponse:  `{"success":true}`,
			checkLogContains: []string{`"method":"GET"`, `"uri":"/api/buses?status=active"`, `"status":200`, `"duration":`, `"size":16`, `"level":"info"`},
		},
		{
			name:             "create schedule",
			method:           http.MethodPost,
			path:             "/api/schedules",
			handlerStatus:    http.StatusCreated,
			handlerResponse:  "created",
			checkLogContains: []string{`"method":"POST"`, `"status":201`},
		},
		{
			name:             "no body",
			method:           http.MethodDelete,
			path:             "/api/users/3",
			handlerStatus:    http.StatusNoContent,
			checkLogContains: []string{`"method":"DELETE"`, `"status":204`, `"size":0`},
		},
		{
			name:             "access denied",
			method:           http.MethodGet,
			path:             "/api/admin/dashboard/stats",
			handlerStatus:    http.StatusForbidden,
			handlerResponse:  "denied",
			checkLogContains: []string{`"status":403`, `"uri":"/api/admin/dashboard/stats"`, `"level":"warn"`},
		},
		{
			name:             "server failure",
			method:           http.MethodPut,
			path:             "/api/buses/1",
			handlerStatus:    http.StatusInternalServerError,
			handlerResponse:  "boom",
			checkLogContains: []string{`"status":500`, `"level":"error"`, `"remote":"192.0.2.1:1234"`},
		},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_ImplicitStatusAndSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 512)))
		_, _ = w.Write([]byte(strings.Repeat("b", 512)))
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/api/buses", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
	assert.Contains(t, logBuf.String(), `"size":1024`)
}

func TestWithLogging_ConcurrentRequests(t *testing.T) {
	middleware := newTestHandler().withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, makeRequest(http.MethodGet, "/api/schedules", &buf))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, buf.String(), `"status":200`)
		}()
	}
	wg.Wait()
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer
	middleware := newTestHandler().withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	assert.Panics(t, func() {
		middleware.ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	})
}
