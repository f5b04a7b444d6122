package repository

import (
	"github.com/workout-tracker/internal/models"
	"gorm.io/gorm"
)

// displayOrder is the presentation order used everywhere workouts are listed:
// most recent date first, insertion order breaking ties.
const displayOrder = "workout_date DESC, id DESC"

// WorkoutRepository handles workout data access
type WorkoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new WorkoutRepository
func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Create inserts a new workout
func (r *WorkoutRepository) Create(workout *models.Workout) error {
	return r.db.Create(workout).Error
}

// GetByUserID retrieves all workouts for a user in display order
func (r *WorkoutRepository) GetByUserID(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	result := r.db.Where("user_id = ?", userID).
		Order(displayOrder).
		Find(&workouts)
	if result.Error != nil {
		return nil, result.Error
	}
	return workouts, nil
}

// Search performs a case-insensitive substring match against workout activity
// or the owning user's username, across all users.
func (r *WorkoutRepository) Search(term string) ([]models.WorkoutWithUser, error) {
	pattern := "%" + term + "%"

	var rows []models.WorkoutWithUser
	result := r.db.Table("workouts").
		Select("workouts.workout_date, workouts.activity, workouts.duration_minutes, workouts.intensity, users.username").
		Joins("JOIN users ON users.id = workouts.user_id").
		Where("LOWER(workouts.activity) LIKE LOWER(?) OR LOWER(users.username) LIKE LOWER(?)", pattern, pattern).
		Order("workouts.workout_date DESC, workouts.id DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// Recent retrieves the most recent workouts system-wide, joined with the
// owning username, in display order.
func (r *WorkoutRepository) Recent(limit int) ([]models.WorkoutWithUser, error) {
	var rows []models.WorkoutWithUser
	result := r.db.Table("workouts").
		Select("workouts.workout_date, workouts.activity, workouts.duration_minutes, workouts.intensity, users.username").
		Joins("JOIN users ON users.id = workouts.user_id").
		Order("workouts.workout_date DESC, workouts.id DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
