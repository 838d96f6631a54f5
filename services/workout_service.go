package services

import (
	"time"

	"github.com/aryan877/fit-track/models"

	"gorm.io/gorm"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type WorkoutInput struct {
	Exercise string
	Sets     int
	Reps     int
	Weight   float64
	Date     time.Time
}

func (s *WorkoutService) Log(userID uint, in WorkoutInput) (*models.WorkoutEntry, error) {
	entry := models.WorkoutEntry{
		UserID:   userID,
		Exercise: in.Exercise,
		Sets:     in.Sets,
		Reps:     in.Reps,
		Weight:   in.Weight,
		Date:     in.Date,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *WorkoutService) List(userID uint) ([]models.WorkoutEntry, error) {
	var entries []models.WorkoutEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

func (s *WorkoutService) ListByDateRange(userID uint, from, to time.Time) ([]models.WorkoutEntry, error) {
	var entries []models.WorkoutEntry
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// Delete removes one entry scoped to its owner and returns the deleted
// row; gorm.ErrRecordNotFound when the id does not belong to the user.
func (s *WorkoutService) Delete(userID, id uint) (*models.WorkoutEntry, error) {
	var entry models.WorkoutEntry
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return nil, err
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
