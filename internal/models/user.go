package models

// User represents a registered user.
//
// Password is stored exactly as the configured password scheme produced it;
// with the default "plain" scheme that is the raw submitted value. See
// pkg/password for the verifier abstraction.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`

	// Relations
	Workouts []Workout `gorm:"foreignKey:UserID" json:"workouts,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
