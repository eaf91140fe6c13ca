package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"termsheet/internal/config"
	"termsheet/internal/handler"
	"termsheet/internal/middleware"
)

// Handlers bundles the HTTP handlers mounted by Setup.
type Handlers struct {
	Upload     *handler.UploadHandler
	Validation *handler.ValidationHandler
	Comparison *handler.ComparisonHandler
	Assistant  *handler.AssistantHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, verifier *middleware.TokenVerifier, h Handlers) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = (cfg.Upload.MaxFileSizeMB + 1) << 20

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(verifier))

	uploads := v1.Group("/uploads")
	uploads.POST("", h.Upload.Upload)
	uploads.GET("", h.Upload.List)
	uploads.GET("/:id", h.Upload.GetByID)
	uploads.POST("/:id/validate", h.Validation.Validate)
	uploads.GET("/:id/validations", h.Validation.ListByUpload)

	validations := v1.Group("/validations")
	validations.GET("/:id", h.Validation.GetByID)
	validations.GET("/:id/export", h.Validation.Export)

	v1.POST("/compare/termsheets", h.Comparison.Compare)
	comparisons := v1.Group("/comparisons")
	comparisons.GET("/:id", h.Comparison.GetByID)
	comparisons.GET("/:id/export", h.Comparison.Export)

	v1.POST("/assistant", h.Assistant.Ask)

	return r
}
