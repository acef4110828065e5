package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/findata/internal/domain/dto"
)

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

// rateLimiter is an in-memory fixed-window limiter keyed by client IP.
// NOTE: state is per process; multiple replicas each enforce their own limit.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	window  time.Duration
	limit   int
	now     func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*client),
		window:  window,
		limit:   limit,
		now:     time.Now,
	}
}

// allow records one request for ip and reports whether it is within the limit.
func (rl *rateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[ip]
	if !ok || now.Sub(cl.windowStart) >= rl.window {
		rl.clients[ip] = &client{windowStart: now, count: 1}
		rl.evict(now)
		return true
	}
	cl.count++
	return cl.count <= rl.limit
}

// evict drops clients whose window has expired. Called with mu held.
func (rl *rateLimiter) evict(now time.Time) {
	for ip, cl := range rl.clients {
		if now.Sub(cl.windowStart) >= rl.window {
			delete(rl.clients, ip)
		}
	}
}

// RateLimiter limits each client IP to perMinute requests per minute.
// A non-positive perMinute disables limiting.
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	{"data": null, "info": {"error": "rate limit exceeded"}}
func RateLimiter(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return rateLimit(newRateLimiter(perMinute, time.Minute))
}

func rateLimit(rl *rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
