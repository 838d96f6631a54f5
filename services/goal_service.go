// services/goal_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aryan877/fit-track/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GoalService computes goal targets through the numeric estimator and
// maintains the single goal row per user.
type GoalService struct {
	db        *gorm.DB
	estimator NumericEstimator
}

func NewGoalService(db *gorm.DB, estimator NumericEstimator) *GoalService {
	return &GoalService{db: db, estimator: estimator}
}

type GoalInput struct {
	CurrentWeight float64
	DesiredWeight float64
	StartDate     time.Time
	EndDate       time.Time
}

// CalculateTargets runs the two independent estimations. An exhausted
// oracle aborts the whole calculation; no default is substituted.
func (s *GoalService) CalculateTargets(ctx context.Context, currentWeight, desiredWeight float64) (dailyCalories, dailyExerciseMinutes int, err error) {
	caloriePrompt := fmt.Sprintf(
		"Calculate the daily calorie intake for a person who currently weighs %g kg and wants to reach %g kg. Provide only a single numeric value rounded to the nearest whole number, with no additional text or units.",
		currentWeight, desiredWeight,
	)
	dailyCalories, err = s.estimator.Estimate(ctx, caloriePrompt)
	if err != nil {
		return 0, 0, err
	}

	exercisePrompt := fmt.Sprintf(
		"Calculate the recommended daily exercise minutes for a person who currently weighs %g kg and wants to reach %g kg. Provide only a single numeric value rounded to the nearest whole number, with no additional text or units.",
		currentWeight, desiredWeight,
	)
	dailyExerciseMinutes, err = s.estimator.Estimate(ctx, exercisePrompt)
	if err != nil {
		return 0, 0, err
	}

	return dailyCalories, dailyExerciseMinutes, nil
}

// SaveGoal computes targets and writes the user's goal in one atomic
// insert-or-update keyed on the user_id unique index, so concurrent
// goal-set requests cannot produce duplicate rows.
func (s *GoalService) SaveGoal(ctx context.Context, userID uint, in GoalInput) (*models.Goal, error) {
	dailyCalories, dailyExerciseMinutes, err := s.CalculateTargets(ctx, in.CurrentWeight, in.DesiredWeight)
	if err != nil {
		return nil, err
	}

	goal := models.Goal{
		UserID:               userID,
		CurrentWeight:        in.CurrentWeight,
		DesiredWeight:        in.DesiredWeight,
		DailyCalories:        float64(dailyCalories),
		DailyExerciseMinutes: dailyExerciseMinutes,
		StartDate:            in.StartDate,
		EndDate:              in.EndDate,
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"current_weight", "desired_weight", "daily_calories",
			"daily_exercise_minutes", "start_date", "end_date", "updated_at",
		}),
	}).Create(&goal).Error
	if err != nil {
		return nil, err
	}

	var stored models.Goal
	if err := s.db.Where("user_id = ?", userID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetGoal returns the user's goal, or nil when none exists.
func (s *GoalService) GetGoal(userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

// DeleteGoal removes and returns the user's goal row;
// gorm.ErrRecordNotFound when there is none.
func (s *GoalService) DeleteGoal(userID uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return nil, err
	}
	if err := s.db.Delete(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}
