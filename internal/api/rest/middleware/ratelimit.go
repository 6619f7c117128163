package middleware

import (
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Igbinosa-Christian/scissorapp/internal/limiter"
)

const quotaWindow = 24 * time.Hour

// RateLimitHandler sets object structure.
type RateLimitHandler struct {
	log     *zap.Logger
	counter limiter.Counter
	quota   int64
}

// NewRateLimitHandler initializes a new rate limit handler enforcing a per-caller daily quota.
func NewRateLimitHandler(counter limiter.Counter, quota int64, logger *zap.Logger) *RateLimitHandler {
	return &RateLimitHandler{
		log:     logger,
		counter: counter,
		quota:   quota,
	}
}

// RateLimitHandle rejects requests beyond the daily quota for one client address with 429.
func (rl *RateLimitHandler) RateLimitHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr := clientAddress(r)
		count, err := rl.counter.Increment(r.Context(), "quota:"+addr, quotaWindow)
		if err != nil {
			rl.log.Error("Quota counter unavailable", zap.String("addr", addr), zap.Error(err))
			http.Error(w, "Rate limiter unavailable", http.StatusInternalServerError)
			return
		}
		if count > rl.quota {
			rl.log.Warn("Daily quota exceeded", zap.String("addr", addr), zap.Int64("count", count))
			http.Error(w, "Daily link creation quota exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientAddress strips the port so one caller maps to one quota key regardless of ephemeral ports.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
