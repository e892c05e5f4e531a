package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "docklogger/docs"
	"docklogger/internal/handler"
	"docklogger/internal/middleware"
	"docklogger/internal/service"
)

// Handlers bundles the HTTP handlers the router wires up.
type Handlers struct {
	Auth      *handler.AuthHandler
	Document  *handler.DocumentHandler
	Extract   *handler.ExtractHandler
	Holiday   *handler.HolidayHandler
	Timesheet *handler.TimesheetHandler
	Export    *handler.ExportHandler
	Health    *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Document routes
	docs := protected.Group("/documents")
	docs.POST("", h.Document.Upload)
	docs.GET("", h.Document.List)
	docs.GET("/:id", h.Document.Get)
	docs.PATCH("/:id/notes", h.Document.UpdateNotes)
	docs.DELETE("/:id", h.Document.Delete)
	docs.GET("/:id/share", h.Document.Share)

	// Direct extraction routes for the app's capture flow
	extract := protected.Group("/extract")
	extract.POST("/timesheet", h.Extract.Timesheet)
	extract.POST("/paystub", h.Extract.Paystub)
	extract.POST("/stat-schedule", h.Extract.StatSchedule)
	extract.POST("/test-connection", h.Extract.TestConnection)

	// Extracted records
	protected.GET("/holidays", h.Holiday.ListByYear)
	protected.GET("/timesheet-entries", h.Timesheet.List)
	protected.GET("/exports/timesheets", h.Export.Timesheets)

	return r
}
