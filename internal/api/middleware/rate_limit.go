package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sarveshramani/portfolio/internal/ratelimit"
	"github.com/sarveshramani/portfolio/internal/utils"
)

// RateLimit rejects clients over their window budget with 429. When the
// limiter itself fails the request is let through.
func RateLimit(l ratelimit.Limiter, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := l.Allow(c.Request.Context(), "ip:"+c.ClientIP())
		if err != nil {
			log.WithError(err).Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		reset := strconv.Itoa(int(math.Ceil(d.Reset.Seconds())))
		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Header("X-RateLimit-Reset", reset)

		if !d.Allowed {
			rateLimitExceeded.Inc()
			c.Header("Retry-After", reset)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, utils.APIError{
				Code:    utils.CodeTooManyRequests,
				Message: "Too Many Requests. Try again in " + reset + "s",
			})
			return
		}

		c.Next()
	}
}
