package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"example.com/home-readiness/backend/internal/auth"
	"example.com/home-readiness/backend/internal/cache"
	"example.com/home-readiness/backend/internal/config"
	"example.com/home-readiness/backend/internal/handlers"
	"example.com/home-readiness/backend/internal/repository"
	"example.com/home-readiness/backend/internal/sink"
)

// New собирает HTTP-сервер Echo с роутами и зависимостями.
// db может быть nil: тогда листа ожидания и панели коуча нет,
// а оценки отдаются без сохранения.
func New(cfg config.Config, logger *slog.Logger, db *pgxpool.Pool, dataSink *sink.Sink) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var (
		assessmentRepo *repository.AssessmentRepository
		waitlistRepo   *repository.WaitlistRepository
		coachRepo      *repository.CoachRepository
	)
	if db != nil {
		assessmentRepo = repository.NewAssessmentRepository(db)
		waitlistRepo = repository.NewWaitlistRepository(db)
		coachRepo = repository.NewCoachRepository(db)
	}

	var countCache cache.Cache
	switch cfg.Cache.Provider {
	case "redis":
		countCache = cache.NewRedisCache(cfg.Cache.RedisAddr, logger)
	default:
		countCache = cache.NewMemoryCache()
	}

	scoreHandler := handlers.NewScoreHandler(dataSink)
	calculateHandler := handlers.NewCalculateHandler(dataSink)
	waitlistHandler := handlers.NewWaitlistHandler(waitlistRepo, countCache, cfg.Cache.WaitlistCountTTL, dataSink)
	coachHandler := handlers.NewCoachHandler(assessmentRepo)
	authHandler := handlers.NewAuthHandler(coachRepo, tokenManager)

	registerRoutes(
		e,
		scoreHandler,
		calculateHandler,
		waitlistHandler,
		coachHandler,
		authHandler,
		auth.JWTMiddleware(tokenManager),
		authRateLimiter(cfg.Auth),
		scoreRateLimiter(cfg.Score),
	)

	return e
}

// NewHTTPServer создает net/http сервер с заданными таймаутами.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			msg := "request completed"
			if v.Status >= http.StatusInternalServerError {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, msg, attrs...)
				return nil
			}

			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, msg, attrs...)
			return nil
		},
	})
}

func authRateLimiter(cfg config.AuthConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}

func scoreRateLimiter(cfg config.ScoreConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}
