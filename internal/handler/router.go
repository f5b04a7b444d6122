package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/workout-tracker/internal/middleware"
	"github.com/workout-tracker/internal/service"
	"github.com/workout-tracker/internal/session"
)

// RouterConfig carries the pieces of configuration the router needs.
type RouterConfig struct {
	TemplatesGlob string
	StaticDir     string
	CookieName    string
	CookieMaxAge  int
}

// NewRouter builds the full route table: session restore on every request,
// request logging, the redirect-based auth guard on protected routes, and
// the 404 fallback.
func NewRouter(
	cfg RouterConfig,
	sessions *session.Manager,
	authService *service.AuthService,
	workoutService *service.WorkoutService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLoggerMiddleware())
	r.Use(middleware.SessionMiddleware(sessions, cfg.CookieName))

	r.LoadHTMLGlob(cfg.TemplatesGlob)
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	siteHandler := NewSiteHandler(workoutService)
	authHandler := NewAuthHandler(authService, sessions, cfg.CookieName, cfg.CookieMaxAge)
	workoutHandler := NewWorkoutHandler(workoutService)
	searchHandler := NewSearchHandler(workoutService)

	siteHandler.RegisterRoutes(r)
	authHandler.RegisterRoutes(r)
	workoutHandler.RegisterRoutes(r, middleware.RequireLogin())
	searchHandler.RegisterRoutes(r)

	return r
}
