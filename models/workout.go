package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutEntry is immutable once logged; the only lifecycle operation
// besides create is delete.
type WorkoutEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"userId"`
	Exercise string    `gorm:"size:256;not null" json:"exercise"`
	Sets     int       `gorm:"not null" json:"sets"`
	Reps     int       `gorm:"not null" json:"reps"`
	Weight   float64   `gorm:"not null" json:"weight"`
	Date     time.Time `gorm:"index;not null" json:"date"`
}
