package models

import "time"

// Goal holds a user's single active weight target for a date range.
// The unique index on UserID backs the atomic insert-or-update in the
// goal service; at most one row can ever exist per user. No soft delete:
// a tombstone would keep occupying the unique index.
type Goal struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"uniqueIndex;not null" json:"userId"`
	CurrentWeight        float64   `gorm:"not null" json:"currentWeight"`
	DesiredWeight        float64   `gorm:"not null" json:"desiredWeight"`
	DailyCalories        float64   `gorm:"not null" json:"dailyCalories"`
	DailyExerciseMinutes int       `gorm:"not null" json:"dailyExerciseMinutes"`
	StartDate            time.Time `gorm:"not null" json:"startDate"`
	EndDate              time.Time `gorm:"not null" json:"endDate"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
