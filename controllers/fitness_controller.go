// controllers/fitness_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/aryan877/fit-track/middlewares"
	"github.com/aryan877/fit-track/services"

	"github.com/gin-gonic/gin"
)

type FitnessController struct {
	Workouts  *services.WorkoutService
	Nutrition *services.NutritionService
}

func NewFitnessController(workouts *services.WorkoutService, nutrition *services.NutritionService) *FitnessController {
	return &FitnessController{Workouts: workouts, Nutrition: nutrition}
}

// GetFitnessHistory returns month-bounded raw entries for the charts
// plus their server-side aggregations. startDate/endDate are snapped to
// whole months; with no params the window is the current month.
func (f *FitnessController) GetFitnessHistory(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	now := time.Now().UTC()
	from := monthStart(now)
	to := monthEnd(now)

	if s, e := c.Query("startDate"), c.Query("endDate"); s != "" && e != "" {
		start, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid startDate"})
			return
		}
		end, err := time.Parse("2006-01-02", e)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid endDate"})
			return
		}
		from = monthStart(start)
		to = monthEnd(end)
		if to.Before(from) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "endDate must be on/after startDate"})
			return
		}
	}

	nutrition, err := f.Nutrition.ListByDateRange(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching fitness data"})
		return
	}
	workouts, err := f.Workouts.ListByDateRange(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching fitness data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nutrition":          nutrition,
		"workouts":           workouts,
		"nutritionByDay":     services.AggregateNutritionByDay(nutrition),
		"workoutsByBodyPart": services.AggregateWorkoutsByBodyPart(workouts),
	})
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func monthEnd(t time.Time) time.Time {
	return monthStart(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
