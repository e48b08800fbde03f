package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/stackforge-labs/webapp_suite/cmd/docs"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/middleware"
	"github.com/stackforge-labs/webapp_suite/internal/platform/config"
)

// credentialRateLimit bounds attempts against the credential-bearing
// endpoints (login, forgot-password) per client IP.
var credentialRateLimit = limiter.Rate{
	Period: 1 * time.Minute,
	Limit:  10,
}

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check stays outside auth and rate limiting.
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	rateLimited := middleware.RateLimit(limiter.New(memory.NewStore(), credentialRateLimit))

	// Public authentication routes
	public := r.Group("/api/v1")
	registerPublicAuthRoutes(public, rateLimited, services.Auth, services.User, cfg)

	// Authenticated routes
	setupAPIV1Routes(r, services, cfg)

	// Swagger routes (disabled in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the protected /api/v1 group and delegates
// to per-entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	cfg *config.Config,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(services.Token))

	registerExampleRoutes(v1)
	registerProtectedAuthRoutes(v1, services.Auth, services.User, cfg)
	registerUserRoutes(v1, services.User, services.Auth)
	registerCustomerRoutes(v1, services.Customer)
	registerProductRoutes(v1, services.Product)
	registerStudentRoutes(v1, services.Student)

	// Admin routes take an additional role gate on top of auth.
	admin := v1.Group("/admin", middleware.RequireRoles(domain.RoleAdmin))
	registerAdminRoutes(admin, services.Admin)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
