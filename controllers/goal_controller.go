// controllers/goal_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/aryan877/fit-track/middlewares"
	"github.com/aryan877/fit-track/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GoalController struct {
	Svc *services.GoalService
	RT  *services.RealtimeHub
}

func NewGoalController(svc *services.GoalService, rt *services.RealtimeHub) *GoalController {
	return &GoalController{Svc: svc, RT: rt}
}

type goalRequest struct {
	Action        string  `json:"action"`
	CurrentWeight float64 `json:"currentWeight"`
	DesiredWeight float64 `json:"desiredWeight"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
}

// HandleGoals covers both POST modes of the goal surface: action
// "calculate" returns the two estimates without persisting, anything
// else computes and upserts the goal.
func (g *GoalController) HandleGoals(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid data"})
		return
	}

	if req.Action == "calculate" {
		if req.CurrentWeight <= 0 || req.DesiredWeight <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid data"})
			return
		}

		dailyCalories, dailyExerciseMinutes, err := g.Svc.CalculateTargets(c.Request.Context(), req.CurrentWeight, req.DesiredWeight)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to calculate goals"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"dailyCalories":        dailyCalories,
				"dailyExerciseMinutes": dailyExerciseMinutes,
			},
		})
		return
	}

	if req.CurrentWeight <= 0 || req.DesiredWeight <= 0 || req.StartDate == "" || req.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid data"})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid data"})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid data"})
		return
	}

	goal, err := g.Svc.SaveGoal(c.Request.Context(), userID, services.GoalInput{
		CurrentWeight: req.CurrentWeight,
		DesiredWeight: req.DesiredWeight,
		StartDate:     startDate,
		EndDate:       endDate,
	})
	if err != nil {
		if errors.Is(err, services.ErrEstimationExhausted) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to calculate goals"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error saving goal"})
		return
	}

	g.RT.BroadcastUpdate(userID, "goal.saved", goal)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": goal})
}

func (g *GoalController) GetGoal(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	goal, err := g.Svc.GetGoal(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching goal"})
		return
	}

	var out any
	if goal != nil {
		out = goal
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

func (g *GoalController) DeleteGoal(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	goal, err := g.Svc.DeleteGoal(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting goal"})
		return
	}

	g.RT.BroadcastUpdate(userID, "goal.deleted", goal)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": goal})
}
