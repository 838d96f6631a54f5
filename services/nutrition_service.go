// services/nutrition_service.go
package services

import (
	"time"

	"github.com/aryan877/fit-track/models"

	"gorm.io/gorm"
)

type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

// MealInput is the shared validated shape for one meal at the boundary.
// A non-zero ID marks an existing entry to update in place.
type MealInput struct {
	ID       uint
	MealType string
	MealName string
	Portion  float64
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

// SaveMeals persists a batch in one call: entries carrying an id are
// replaced in place (and restamped to now), the rest are inserted. All
// writes are scoped to the owning user.
func (s *NutritionService) SaveMeals(userID uint, meals []MealInput) ([]models.NutritionEntry, error) {
	now := time.Now().UTC()
	results := make([]models.NutritionEntry, 0, len(meals))

	for _, m := range meals {
		if m.ID == 0 {
			continue
		}
		var entry models.NutritionEntry
		if err := s.db.Where("id = ? AND user_id = ?", m.ID, userID).First(&entry).Error; err != nil {
			return nil, err
		}
		entry.MealType = m.MealType
		entry.MealName = m.MealName
		entry.Portion = m.Portion
		entry.Calories = m.Calories
		entry.Protein = m.Protein
		entry.Carbs = m.Carbs
		entry.Fat = m.Fat
		entry.Date = now
		if err := s.db.Save(&entry).Error; err != nil {
			return nil, err
		}
		results = append(results, entry)
	}

	for _, m := range meals {
		if m.ID != 0 {
			continue
		}
		entry := models.NutritionEntry{
			UserID:   userID,
			Date:     now,
			MealType: m.MealType,
			MealName: m.MealName,
			Portion:  m.Portion,
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
		}
		if err := s.db.Create(&entry).Error; err != nil {
			return nil, err
		}
		results = append(results, entry)
	}

	return results, nil
}

// ListToday returns the user's entries for the current UTC calendar day,
// oldest first.
func (s *NutritionService) ListToday(userID uint) ([]models.NutritionEntry, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var entries []models.NutritionEntry
	err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (s *NutritionService) ListByDateRange(userID uint, from, to time.Time) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// UpdateEntry edits one entry without restamping its timestamp.
func (s *NutritionService) UpdateEntry(userID uint, in MealInput) (*models.NutritionEntry, error) {
	var entry models.NutritionEntry
	if err := s.db.Where("id = ? AND user_id = ?", in.ID, userID).First(&entry).Error; err != nil {
		return nil, err
	}
	entry.MealType = in.MealType
	entry.MealName = in.MealName
	entry.Portion = in.Portion
	entry.Calories = in.Calories
	entry.Protein = in.Protein
	entry.Carbs = in.Carbs
	entry.Fat = in.Fat
	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes one entry scoped to its owner and returns the deleted
// row; gorm.ErrRecordNotFound when absent.
func (s *NutritionService) Delete(userID, id uint) (*models.NutritionEntry, error) {
	var entry models.NutritionEntry
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return nil, err
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
