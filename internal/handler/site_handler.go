package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workout-tracker/internal/middleware"
	"github.com/workout-tracker/internal/service"
)

// SiteHandler handles the public home and about pages
type SiteHandler struct {
	workoutService *service.WorkoutService
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(workoutService *service.WorkoutService) *SiteHandler {
	return &SiteHandler{workoutService: workoutService}
}

// Home shows the most recent workouts system-wide. A persistence failure is
// logged and the page renders with an empty feed.
// GET /
func (h *SiteHandler) Home(c *gin.Context) {
	latest, err := h.workoutService.Recent()
	if err != nil {
		middleware.LogError("load home page workouts: %v", err)
		latest = nil
	}
	render(c, http.StatusOK, "home.html", gin.H{
		"LatestWorkouts": latest,
	})
}

// About shows the static about page
// GET /about
func (h *SiteHandler) About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", nil)
}

// NotFound responds to every unmatched route
func (h *SiteHandler) NotFound(c *gin.Context) {
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<h1>404 – Page not found</h1>"))
}

// RegisterRoutes registers the public site routes and the 404 fallback
func (h *SiteHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.NoRoute(h.NotFound)
}
