package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal types accepted at the boundary.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

// NutritionEntry is one logged meal. Macro fields are pointers: nil means
// the value was never estimated (or the extractor missed it), which is
// distinct from an explicit zero.
type NutritionEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"userId"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	MealType string    `gorm:"size:20;not null" json:"mealType"`
	MealName string    `gorm:"size:256;not null" json:"mealName"`
	Portion  float64   `gorm:"not null" json:"portion"` // grams
	Calories *float64  `json:"calories"`
	Protein  *float64  `json:"protein"`
	Carbs    *float64  `json:"carbs"`
	Fat      *float64  `json:"fat"`
}
