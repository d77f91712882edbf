package server

import (
	"github.com/labstack/echo/v4"

	"example.com/home-readiness/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	scoreHandler *handlers.ScoreHandler,
	calculateHandler *handlers.CalculateHandler,
	waitlistHandler *handlers.WaitlistHandler,
	coachHandler *handlers.CoachHandler,
	authHandler *handlers.AuthHandler,
	authMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	scoreRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")

	api.POST("/score", scoreHandler.Score, scoreRateLimiter)
	api.POST("/calculate", calculateHandler.Calculate, scoreRateLimiter)

	api.POST("/waitlist", waitlistHandler.Join)
	api.GET("/waitlist", waitlistHandler.Count)

	authGroup := api.Group("/auth", authRateLimiter)
	authGroup.POST("/coach-signin", authHandler.SignIn)

	coachGroup := api.Group("/coach")
	coachGroup.POST("/chat", coachHandler.Chat)
	coachGroup.GET("/assessments", coachHandler.ListAssessments, authMiddleware)
}
