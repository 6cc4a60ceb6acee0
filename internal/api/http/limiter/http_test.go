package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddlewareAllowsWithinBurst(t *testing.T) {
	t.Parallel()

	var handled int
	h := NewMiddleware(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handled++
	}))

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
	}

	// Burst of 2 passes, the rest is rejected immediately.
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 2, handled)
}

func TestMiddlewareRejectedRequestsDontReachHandler(t *testing.T) {
	t.Parallel()

	var handled int
	h := NewMiddleware(0, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handled++
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, 0, handled)
}
