package models

import (
	"time"
)

// Workout is a single logged exercise event owned by a user.
type Workout struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	WorkoutDate     time.Time `gorm:"type:date;not null" json:"workout_date"`
	Activity        string    `gorm:"size:100;not null" json:"activity"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Intensity       *string   `gorm:"size:50" json:"intensity,omitempty"`
	Notes           *string   `json:"notes,omitempty"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Workout model
func (Workout) TableName() string {
	return "workouts"
}

// WorkoutWithUser is a workout row joined with the owning username, used by
// the home feed and search results.
type WorkoutWithUser struct {
	WorkoutDate     time.Time `json:"workout_date"`
	Activity        string    `json:"activity"`
	DurationMinutes int       `json:"duration_minutes"`
	Intensity       *string   `json:"intensity,omitempty"`
	Username        string    `json:"username"`
}
