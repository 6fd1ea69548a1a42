package server

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/trashtrack/trashtrack-api/internal/handler"
	"github.com/trashtrack/trashtrack-api/internal/middleware"
	"github.com/trashtrack/trashtrack-api/internal/repository"
	"github.com/trashtrack/trashtrack-api/internal/service"
	"github.com/trashtrack/trashtrack-api/pkg/config"
)

// Deps are the process-wide resources the HTTP stack is built on. Redis and Metrics are optional.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	DB      *sqlx.DB
	Redis   *redis.Client
	Metrics *service.MetricsService
}

// New wires repositories, services and handlers into a ready router.
func New(deps Deps) *gin.Engine {
	cfg := deps.Config
	logr := deps.Logger
	if logr == nil {
		logr = zap.NewNop()
	}
	validate := validator.New()

	userRepo := repository.NewUserRepository(deps.DB)
	scheduleRepo := repository.NewPickupScheduleRepository(deps.DB)
	contentRepo := repository.NewEducationalContentRepository(deps.DB)
	reportRepo := repository.NewReportRepository(deps.DB)
	linkRepo := repository.NewReportScheduleRepository(deps.DB)
	seedRepo := repository.NewSeedRepository(deps.DB)

	var sessions service.SessionStore
	if deps.Redis != nil {
		sessions = repository.NewSessionRepository(deps.Redis, cfg.Session.KeyPrefix, logr)
	}

	authSvc := service.NewAuthService(userRepo, sessions, deps.Metrics, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.Auth.JWTSecret,
		AccessTokenExpiry: cfg.Auth.TokenTTL,
		Issuer:            cfg.Auth.Issuer,
	})
	userSvc := service.NewUserService(userRepo, logr, cfg.Auth.BcryptCost)
	scheduleSvc := service.NewPickupScheduleService(scheduleRepo, logr)
	contentSvc := service.NewEducationalContentService(contentRepo, logr)
	reportSvc := service.NewReportService(reportRepo, validate, logr)
	linkSvc := service.NewReportScheduleService(linkRepo, logr)
	seedSvc := service.NewSeedService(seedRepo, logr, cfg.IsProduction(), cfg.Auth.BcryptCost)

	opts := Options{Config: cfg, Logger: logr, Tokens: authSvc}
	var metricsHandler *handler.MetricsHandler
	if deps.Metrics != nil {
		opts.Observer = deps.Metrics
		metricsHandler = handler.NewMetricsHandler(deps.Metrics)
	}

	return NewRouter(opts, Handlers{
		Users:              handler.NewUserHandler(userSvc),
		Auth:               handler.NewAuthHandler(authSvc),
		PickupSchedules:    handler.NewPickupScheduleHandler(scheduleSvc),
		EducationalContent: handler.NewEducationalContentHandler(contentSvc),
		Reports:            handler.NewReportHandler(reportSvc, linkSvc),
		ReportSchedules:    handler.NewReportScheduleHandler(linkSvc),
		System:             handler.NewSystemHandler(deps.DB, seedSvc, cfg.APIPrefix),
		Metrics:            metricsHandler,
	})
}

var _ middleware.TokenValidator = (*service.AuthService)(nil)
