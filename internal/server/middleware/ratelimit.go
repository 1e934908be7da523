package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware caps requests per second across all callers. A zero
// or negative rps disables limiting.
func RateLimitMiddleware(rps float64) func(http.Handler) http.Handler {
	var limiter *rate.Limiter
	if rps > 0 {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}

	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
