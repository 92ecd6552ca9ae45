package middlewares_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/hijri/middlewares"
	"github.com/dmitrymomot/hijri/pkg/logger"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("deadline exceeded", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := middlewares.Timeout(10*time.Millisecond,
			middlewares.WithTimeoutLogger(logger.New(logger.WithOutput(&buf))),
		)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"timeout"`)
		assert.Contains(t, buf.String(), "request timeout")
	})

	t.Run("fast handler", func(t *testing.T) {
		t.Parallel()

		var deadline bool
		h := middlewares.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, deadline = r.Context().Deadline()
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, deadline)
	})

	t.Run("written response kept", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Timeout(5*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			<-r.Context().Done()
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("custom responder", func(t *testing.T) {
		t.Parallel()

		var got *middlewares.TimeoutError
		h := middlewares.Timeout(time.Millisecond,
			middlewares.WithTimeoutResponder(func(w http.ResponseWriter, _ *http.Request, terr *middlewares.TimeoutError) {
				got = terr
				w.WriteHeader(http.StatusGatewayTimeout)
			}),
		)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		assert.True(t, middlewares.IsTimeoutError(got))
		assert.Equal(t, time.Millisecond, got.Duration)
	})
}
