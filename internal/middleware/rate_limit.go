package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"flightroutes/explorer/internal/common"
	"flightroutes/explorer/internal/constants"
	"flightroutes/explorer/internal/metrics"

	"golang.org/x/time/rate"
)

var whitelistedIPs = map[string]bool{
	"127.0.0.1": true,
	"::1":       true,
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
	metrics  *metrics.MetricsRegistry
}

func NewRateLimiter(rps float64, burst int, metricsReg *metrics.MetricsRegistry) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		metrics:  metricsReg,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.limiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(rl.rps, rl.burst)
	rl.limiters[ip] = limiter
	return limiter
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if whitelistedIPs[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(ip).Allow() {
			if rl.metrics != nil {
				rl.metrics.RateLimitedRequestsTotal.Inc()
			}
			common.RespondError(w, time.Now(), nil, constants.MsgRateLimitExceeded, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
