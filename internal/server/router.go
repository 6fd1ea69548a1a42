package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/trashtrack/trashtrack-api/internal/handler"
	"github.com/trashtrack/trashtrack-api/internal/middleware"
	"github.com/trashtrack/trashtrack-api/internal/models"
	"github.com/trashtrack/trashtrack-api/pkg/config"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
	"github.com/trashtrack/trashtrack-api/pkg/logger"
	corsmiddleware "github.com/trashtrack/trashtrack-api/pkg/middleware/cors"
	reqidmiddleware "github.com/trashtrack/trashtrack-api/pkg/middleware/requestid"
	"github.com/trashtrack/trashtrack-api/pkg/response"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Users              *handler.UserHandler
	Auth               *handler.AuthHandler
	PickupSchedules    *handler.PickupScheduleHandler
	EducationalContent *handler.EducationalContentHandler
	Reports            *handler.ReportHandler
	ReportSchedules    *handler.ReportScheduleHandler
	System             *handler.SystemHandler
	Metrics            *handler.MetricsHandler
}

// Options carries the cross-cutting collaborators of the router.
type Options struct {
	Config   *config.Config
	Logger   *zap.Logger
	Tokens   middleware.TokenValidator
	Observer middleware.RequestObserver
}

// NewRouter builds the gin engine with every route and middleware installed.
func NewRouter(opts Options, h Handlers) *gin.Engine {
	cfg := opts.Config
	logr := opts.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(logger.Recovery(logr, cfg.IsDevelopment()))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(response.ExposeDetails(cfg.IsDevelopment()))
	if opts.Observer != nil {
		r.Use(middleware.Metrics(opts.Observer))
	}

	r.GET("/", h.System.Index)
	r.GET("/health", h.System.Health)
	r.GET("/ready", h.System.Ready)
	if cfg.Metrics.Enabled && h.Metrics != nil {
		r.GET(cfg.Metrics.Path, h.Metrics.Prometheus)
	}
	if !cfg.IsProduction() {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	enforce := cfg.Auth.EnforceRoles
	authenticated := func(final gin.HandlerFunc) []gin.HandlerFunc {
		return chain(middleware.Guard(opts.Tokens, enforce), final)
	}
	admin := func(final gin.HandlerFunc) []gin.HandlerFunc {
		return chain(middleware.Guard(opts.Tokens, enforce, models.RoleAdmin), final)
	}
	editor := func(final gin.HandlerFunc) []gin.HandlerFunc {
		return chain(middleware.Guard(opts.Tokens, enforce, models.RoleAdmin, models.RoleAuthor), final)
	}

	api := r.Group(cfg.APIPrefix)

	users := api.Group("/users")
	users.POST("/login", h.Auth.Login)
	users.GET("/me", middleware.JWT(opts.Tokens), h.Auth.Me)
	users.POST("/logout", middleware.JWT(opts.Tokens), h.Auth.Logout)
	users.GET("", h.Users.List)
	users.GET("/:id", h.Users.Get)
	users.POST("", admin(h.Users.Create)...)
	users.PUT("/:id", admin(h.Users.Update)...)
	users.DELETE("/:id", admin(h.Users.Delete)...)

	schedules := api.Group("/pickup-schedules")
	schedules.GET("", h.PickupSchedules.List)
	schedules.GET("/:id", h.PickupSchedules.Get)
	schedules.POST("", admin(h.PickupSchedules.Create)...)
	schedules.PUT("/:id", admin(h.PickupSchedules.Update)...)
	schedules.DELETE("/:id", admin(h.PickupSchedules.Delete)...)

	content := api.Group("/educational-content")
	content.GET("", h.EducationalContent.List)
	content.GET("/:id", h.EducationalContent.Get)
	content.POST("", editor(h.EducationalContent.Create)...)
	content.PUT("/:id", editor(h.EducationalContent.Update)...)
	content.DELETE("/:id", editor(h.EducationalContent.Delete)...)

	reports := api.Group("/reports")
	reports.GET("/stats", h.Reports.Stats)
	reports.POST("/pickup-requests", authenticated(h.Reports.CreatePickupRequest)...)
	reports.GET("", h.Reports.List)
	reports.GET("/:id", h.Reports.Get)
	reports.POST("", authenticated(h.Reports.Create)...)
	reports.PUT("/:id", authenticated(h.Reports.Update)...)
	reports.DELETE("/:id", admin(h.Reports.Delete)...)
	reports.PUT("/:id/schedule", admin(h.Reports.SetSchedule)...)

	links := api.Group("/report-schedules")
	links.GET("", h.ReportSchedules.List)
	links.GET("/:id", h.ReportSchedules.Get)
	links.POST("", admin(h.ReportSchedules.Create)...)
	links.PUT("/:id", admin(h.ReportSchedules.Update)...)
	links.DELETE("/:id", admin(h.ReportSchedules.Delete)...)

	api.POST("/seed", h.System.Seed)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.ErrRouteNotFound)
	})

	return r
}

func chain(guards []gin.HandlerFunc, final gin.HandlerFunc) []gin.HandlerFunc {
	handlers := make([]gin.HandlerFunc, 0, len(guards)+1)
	handlers = append(handlers, guards...)
	return append(handlers, final)
}
