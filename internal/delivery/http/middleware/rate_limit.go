package middleware

import (
	"sync"
	"time"

	"legalsite/config"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// pruneThreshold is the number of tracked clients above which idle ones are dropped.
const pruneThreshold = 1024

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	every    rate.Limit
	burst    int
	interval time.Duration
	now      func() time.Time
}

// NewRateLimiter builds a limiter allowing cfg.Requests per cfg.Interval per
// client. A nil config or a non-positive setting disables limiting.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	if cfg == nil || cfg.RateLimit == nil || cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Interval <= 0 {
		return &RateLimiter{}
	}

	perRequest := cfg.RateLimit.Interval / time.Duration(cfg.RateLimit.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	return &RateLimiter{
		clients:  make(map[string]*clientLimiter),
		every:    rate.Every(perRequest),
		burst:    cfg.RateLimit.Requests,
		interval: cfg.RateLimit.Interval,
		now:      time.Now,
	}
}

// Limit rejects requests over budget with ErrRateLimited.
func (l *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if l.clients == nil {
		return next
	}

	return func(c echo.Context) error {
		if !l.Allow(c) {
			return errors.WithStack(domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}

// Allow spends one token of the requesting client. It always succeeds when
// limiting is disabled.
func (l *RateLimiter) Allow(c echo.Context) bool {
	if l.clients == nil {
		return true
	}

	return l.allow(c.RealIP())
}

func (l *RateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	client, ok := l.clients[ip]
	if !ok {
		if len(l.clients) >= pruneThreshold {
			l.prune(now)
		}
		client = &clientLimiter{limiter: rate.NewLimiter(l.every, l.burst)}
		l.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

func (l *RateLimiter) prune(now time.Time) {
	for ip, client := range l.clients {
		if now.Sub(client.lastSeen) > l.interval {
			delete(l.clients, ip)
		}
	}
}
