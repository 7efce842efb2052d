package middleware

import (
	"net/http"
	"sync"
	"time"

	"kiosco/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ventana counts requests of one client IP inside a fixed window.
type ventana struct {
	count int
	fin   time.Time
}

// limiter is a per-IP fixed-window counter. Expired entries are purged while
// serving requests, at most once per purge interval.
type limiter struct {
	mu         sync.Mutex
	limit      int
	window     time.Duration
	entries    map[string]*ventana
	nextPurge  time.Time
	purgeEvery time.Duration
	now        func() time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	return &limiter{
		limit:      limit,
		window:     window,
		entries:    make(map[string]*ventana),
		purgeEvery: 5 * time.Minute,
		now:        time.Now,
	}
}

// allow registers one hit for key and reports whether it is within the
// limit, together with the end of the current window.
func (l *limiter) allow(key string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.nextPurge) {
		l.purge(now)
		l.nextPurge = now.Add(l.purgeEvery)
	}

	v, ok := l.entries[key]
	if !ok || now.After(v.fin) {
		v = &ventana{fin: now.Add(l.window)}
		l.entries[key] = v
	}
	v.count++
	return v.count <= l.limit, v.fin
}

func (l *limiter) purge(now time.Time) {
	purged := 0
	for k, v := range l.entries {
		if now.After(v.fin) {
			delete(l.entries, k)
			purged++
		}
	}
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(l.entries)).Msg("rate limiter purged")
	}
}

// LoginRateLimiter limits credential attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	l := newLimiter(20, time.Minute)
	return func(c *gin.Context) {
		if ok, _ := l.allow(c.ClientIP()); !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiados intentos de ingreso. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter caps every client IP at limit requests per window.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimiter(limit, window)
	return func(c *gin.Context) {
		ok, fin := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", fin.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
