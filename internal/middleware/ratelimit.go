package middleware

import (
	"net/http"
	"sync"
	"time"

	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/metrics"
	"lucky_wheel/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов по игроку, без токена - по адресу клиента
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	logger   logrus.FieldLogger
	now      func() time.Time
}

func NewRateLimiter(perSecond float64, burst int, logger logrus.FieldLogger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(perSecond),
		burst:    burst,
		logger:   logger,
		now:      time.Now,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = rl.now()

	return entry.limiter
}

func (rl *RateLimiter) Handler(operation string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, ok := PlayerFromContext(r.Context())
			if !ok {
				key = r.RemoteAddr
			}

			if !rl.getLimiter(key).Allow() {
				rl.logger.WithFields(logrus.Fields{
					"key":       key,
					"operation": operation,
					"path":      r.URL.Path,
				}).Warn("rate limit exceeded")
				metrics.RecordRejection(operation, model.ErrorCode(model.ErrRateLimited))

				converter.WriteError(w, model.ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Cleanup удаляет лимитеры, не использованные дольше idle. Вызывается по расписанию
func (rl *RateLimiter) Cleanup(idle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-idle)
	removed := 0
	for key, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
			removed++
		}
	}
	return removed
}
