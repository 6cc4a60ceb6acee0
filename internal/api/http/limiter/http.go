package limiter

import (
	"net/http"

	"golang.org/x/time/rate"
)

// NewMiddleware creates http middleware limiting the rate of handled requests.
// maxRate - maximum number of requests per second, burst - short burst allowance.
// Requests over the limit are rejected with status 429, they never queue.
func NewMiddleware(maxRate float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(maxRate), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
