package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/workout-tracker/internal/middleware"
	"github.com/workout-tracker/internal/service"
)

// WorkoutHandler handles the protected workout list and add routes
type WorkoutHandler struct {
	workoutService *service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler
func NewWorkoutHandler(workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// List shows the session user's workouts
// GET /workouts
func (h *WorkoutHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	workouts, err := h.workoutService.ListByUser(userID)
	if err != nil {
		middleware.LogError("list workouts for user %d: %v", userID, err)
		c.String(http.StatusInternalServerError, "Error loading workouts")
		return
	}

	render(c, http.StatusOK, "workouts.html", gin.H{
		"Workouts": workouts,
	})
}

// AddForm shows an empty add-workout form
// GET /workouts/add
func (h *WorkoutHandler) AddForm(c *gin.Context) {
	render(c, http.StatusOK, "workout_form.html", nil)
}

// Add inserts a workout scoped to the session user
// POST /workouts/add
func (h *WorkoutHandler) Add(c *gin.Context) {
	workoutDate := c.PostForm("workout_date")
	activity := c.PostForm("activity")
	durationStr := c.PostForm("duration_minutes")

	if workoutDate == "" || activity == "" || durationStr == "" {
		render(c, http.StatusOK, "workout_form.html", gin.H{
			"Flash": errorFlash("Please provide a date, activity and duration."),
		})
		return
	}

	date, err := time.Parse("2006-01-02", workoutDate)
	if err != nil {
		render(c, http.StatusOK, "workout_form.html", gin.H{
			"Flash": errorFlash("Please provide a date, activity and duration."),
		})
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil || duration <= 0 {
		render(c, http.StatusOK, "workout_form.html", gin.H{
			"Flash": errorFlash("Please provide a date, activity and duration."),
		})
		return
	}

	userID := middleware.GetUserID(c)
	input := service.AddWorkoutInput{
		WorkoutDate:     date,
		Activity:        activity,
		DurationMinutes: duration,
		Intensity:       c.PostForm("intensity"),
		Notes:           c.PostForm("notes"),
	}

	if err := h.workoutService.Add(userID, input); err != nil {
		middleware.LogError("insert workout for user %d: %v", userID, err)
		render(c, http.StatusOK, "workout_form.html", gin.H{
			"Flash": errorFlash("Error saving workout."),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/workouts")
}

// RegisterRoutes registers workout routes behind the auth guard
func (h *WorkoutHandler) RegisterRoutes(r *gin.Engine, authGuard gin.HandlerFunc) {
	workouts := r.Group("/workouts", authGuard)
	{
		workouts.GET("", h.List)
		workouts.GET("/add", h.AddForm)
		workouts.POST("/add", h.Add)
	}
}
