package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"kitchenswipe/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit allows each client IP r requests per second with the given
// burst. Limiters idle for ten minutes are forgotten.
func RateLimit(r float64, burst int) gin.HandlerFunc {
	limiters := newClientLimiters(rate.Limit(r), burst, 10*time.Minute)

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			log.Printf("[ratelimit] Rejected %s %s from %s", c.Request.Method, c.FullPath(), c.ClientIP())
			utils.AbortWithError(c, http.StatusTooManyRequests, "Too many requests, try again later")
			return
		}
		c.Next()
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientLimiters struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	idle    time.Duration
	lastGC  time.Time
}

func newClientLimiters(limit rate.Limit, burst int, idle time.Duration) *clientLimiters {
	return &clientLimiters{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
		idle:    idle,
		lastGC:  time.Now(),
	}
}

func (l *clientLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastGC) > l.idle {
		for key, cl := range l.clients {
			if now.Sub(cl.lastSeen) > l.idle {
				delete(l.clients, key)
			}
		}
		l.lastGC = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// Recovery converts a panic into a generic 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[recovery] Panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		utils.AbortWithError(c, http.StatusInternalServerError, "Internal server error")
	})
}
