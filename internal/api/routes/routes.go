package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/sarveshramani/portfolio/internal/api/handlers"
	"github.com/sarveshramani/portfolio/internal/api/middleware"
	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/ratelimit"
)

type Deps struct {
	Handlers *handlers.Set
	Log      logrus.FieldLogger
	Prefix   string

	// Limiter is optional; nil disables rate limiting.
	Limiter ratelimit.Limiter

	// TrustedProxies lists the proxy CIDRs whose X-Forwarded-For is believed.
	// Empty means the client address is always the socket peer.
	TrustedProxies []string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(models.JSONFieldName)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(normalizePrefix(d.Prefix))
	if d.Limiter != nil {
		api.Use(middleware.RateLimit(d.Limiter, d.Log))
	}

	h := d.Handlers
	api.GET("/", handlers.Root)

	api.GET("/personal-info", h.PersonalInfo.Get)
	api.PUT("/personal-info", h.PersonalInfo.Update)

	api.GET("/experience", h.Experience.List)
	api.POST("/experience", h.Experience.Create)
	api.PUT("/experience/:id", h.Experience.Update)
	api.DELETE("/experience/:id", h.Experience.Delete)

	api.GET("/projects", h.Projects.List)
	api.GET("/projects/featured", h.Projects.Featured)
	api.POST("/projects", h.Projects.Create)
	api.PUT("/projects/:id", h.Projects.Update)
	api.DELETE("/projects/:id", h.Projects.Delete)

	api.GET("/skills", h.Skills.List)
	api.POST("/skills", h.Skills.Create)
	api.PUT("/skills/:id", h.Skills.Update)
	api.DELETE("/skills/:id", h.Skills.Delete)

	api.GET("/education", h.Education.List)
	api.POST("/education", h.Education.Create)

	api.GET("/achievements", h.Achievements.List)
	api.POST("/achievements", h.Achievements.Create)
}

// NewRouter builds the gin engine with logging, metrics and recovery.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		d.Log.WithError(err).Warn("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Log), middleware.Metrics())
	RegisterRoutes(r, d)
	return r
}

// NewHandler wraps the router with a CORS policy open to any origin. The
// request origin is echoed so credentialed requests are accepted.
func NewHandler(d Deps) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc:  func(*http.Request, string) bool { return true },
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	})(NewRouter(d))
}

func normalizePrefix(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
