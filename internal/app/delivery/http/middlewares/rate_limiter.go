package middlewares

import (
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter allows requests tokens per window per IP and blocks an IP for
// blockTime once it runs out.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(logger *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	return &RateLimiter{
		log:       logger,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		rl.mu.Lock()

		if blockedUntil, found := rl.blocked[ip]; found {
			if rl.now().Before(blockedUntil) {
				rl.mu.Unlock()
				utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(errors.New("ip is temporarily blocked")))
				return
			}
			delete(rl.blocked, ip)
			delete(rl.limiters, ip)
		}

		limiter, exists := rl.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(rl.per/time.Duration(rl.requests)), rl.requests)
			rl.limiters[ip] = limiter
		}

		rl.mu.Unlock()

		if !limiter.Allow() {
			rl.mu.Lock()
			rl.blocked[ip] = rl.now().Add(rl.blockTime)
			rl.mu.Unlock()

			rl.log.Warn("IP blocked by rate limiter",
				zap.String("ip", ip),
				zap.String("endpoint", req.URL.Path),
				zap.Duration("block_time", rl.blockTime),
			)
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, req)
	})
}
