package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-intake-backend/internal/shared/config"
	"clinic-intake-backend/internal/shared/server/middleware"
	"clinic-intake-backend/internal/shared/server/respond"
)

// RouteRegistrar attaches a handler's routes to the router.
type RouteRegistrar interface {
	RegisterRoutes(r gin.IRouter)
}

// HealthService provides the health payload.
type HealthService interface {
	Status() map[string]string
}

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config            config.Config
	Health            HealthService
	ClinicHandler     RouteRegistrar
	UploadHandler     RouteRegistrar
	ExtractionHandler RouteRegistrar
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})

	deps.ClinicHandler.RegisterRoutes(r)
	deps.UploadHandler.RegisterRoutes(r)
	deps.ExtractionHandler.RegisterRoutes(r)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":4000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
