package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/workout-tracker/internal/middleware"
	"github.com/workout-tracker/internal/service"
)

// SearchHandler handles the public global workout search
type SearchHandler struct {
	workoutService *service.WorkoutService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(workoutService *service.WorkoutService) *SearchHandler {
	return &SearchHandler{workoutService: workoutService}
}

// Form shows a blank search form
// GET /search
func (h *SearchHandler) Form(c *gin.Context) {
	render(c, http.StatusOK, "search.html", gin.H{
		"Query": "",
	})
}

// Results runs the global case-insensitive substring search
// GET /search/results?q=
func (h *SearchHandler) Results(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	if q == "" {
		render(c, http.StatusOK, "search.html", gin.H{
			"Query":   "",
			"Message": "Please enter a search term.",
		})
		return
	}

	results, err := h.workoutService.Search(q)
	if err != nil {
		middleware.LogError("search %q: %v", q, err)
		render(c, http.StatusOK, "search_results.html", gin.H{
			"Results": nil,
			"Query":   q,
			"Message": "An error occurred while searching.",
		})
		return
	}

	data := gin.H{
		"Results": results,
		"Query":   q,
	}
	if len(results) == 0 {
		data["Message"] = "No workouts found."
	}
	render(c, http.StatusOK, "search_results.html", data)
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/search", h.Form)
	r.GET("/search/results", h.Results)
}
