package router

import (
	"github.com/gin-gonic/gin"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/handler"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/middleware"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/service"
)

// Handlers collects the HTTP handlers wired by Setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Document *handler.DocumentHandler
	User     *handler.UserHandler
	Health   *handler.HealthHandler
}

// Setup builds the gin engine with all routes and middleware.
func Setup(cfg *config.Config, authService service.AuthService, h Handlers) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))

	docs := protected.Group("/documents")
	{
		docs.POST("", h.Document.Create)
		docs.GET("", h.Document.List)
		docs.GET("/export", h.Document.Export)
		docs.GET("/:id", h.Document.GetByID)
		docs.GET("/:id/result", h.Document.GetResult)
		docs.POST("/:id/reextract", h.Document.Reextract)
		docs.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Document.Delete)
	}

	users := protected.Group("/users")
	users.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		users.POST("", h.User.Create)
		users.GET("", h.User.List)
	}

	return r
}
