package service

import (
	"strings"
	"time"

	"github.com/workout-tracker/internal/models"
	"github.com/workout-tracker/internal/repository"
)

// homeFeedSize is the number of workouts shown on the home page.
const homeFeedSize = 5

// WorkoutService handles workout creation, listing and search
type WorkoutService struct {
	workoutRepo *repository.WorkoutRepository
}

// NewWorkoutService creates a new WorkoutService
func NewWorkoutService(workoutRepo *repository.WorkoutRepository) *WorkoutService {
	return &WorkoutService{workoutRepo: workoutRepo}
}

// AddWorkoutInput carries the validated add-workout form fields.
type AddWorkoutInput struct {
	WorkoutDate     time.Time
	Activity        string
	DurationMinutes int
	Intensity       string
	Notes           string
}

// Add inserts a workout scoped to the given user. Blank intensity/notes are
// stored as NULL.
func (s *WorkoutService) Add(userID uint, in AddWorkoutInput) error {
	workout := &models.Workout{
		UserID:          userID,
		WorkoutDate:     in.WorkoutDate,
		Activity:        in.Activity,
		DurationMinutes: in.DurationMinutes,
		Intensity:       nullable(in.Intensity),
		Notes:           nullable(in.Notes),
	}
	return s.workoutRepo.Create(workout)
}

// ListByUser returns the user's own workouts in display order.
func (s *WorkoutService) ListByUser(userID uint) ([]models.Workout, error) {
	return s.workoutRepo.GetByUserID(userID)
}

// Search performs the global case-insensitive substring search over activity
// and username. The term is expected to be trimmed and non-empty; the handler
// owns that check.
func (s *WorkoutService) Search(term string) ([]models.WorkoutWithUser, error) {
	return s.workoutRepo.Search(term)
}

// Recent returns the home-page feed of the latest workouts system-wide.
func (s *WorkoutService) Recent() ([]models.WorkoutWithUser, error) {
	return s.workoutRepo.Recent(homeFeedSize)
}

func nullable(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
