package middleware

import (
	"net/http"
	"sync"
	"time"

	"goldenbay/config"
	"goldenbay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds a map of IP addresses to their rate limiters.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var loginLimiterStore = &rateLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string, perMin int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
		s.limiters[ip] = limiter
	}
	return limiter
}

// LoginRateLimitMiddleware throttles credential attempts per client IP,
// mirroring the upstream's burst throttle on the token endpoint.
func LoginRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ip := getClientIP(c)
		perMin := config.AppConfig.LoginAttemptsPerMin
		if perMin <= 0 {
			perMin = 10
		}
		limiter := loginLimiterStore.getLimiter(ip, perMin)
		if !limiter.Allow() {
			logger.Warn("Login rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts. Try again later."})
			return
		}
		c.Next()
	}
}
