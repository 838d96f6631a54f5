package controllers

import (
	"net/http"
	"time"

	"github.com/aryan877/fit-track/middlewares"
	"github.com/aryan877/fit-track/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WorkoutController struct {
	Svc *services.WorkoutService
	RT  *services.RealtimeHub
}

func NewWorkoutController(svc *services.WorkoutService, rt *services.RealtimeHub) *WorkoutController {
	return &WorkoutController{Svc: svc, RT: rt}
}

type workoutPayload struct {
	Exercise string    `json:"exercise" binding:"required"`
	Sets     int       `json:"sets" binding:"required,gt=0"`
	Reps     int       `json:"reps" binding:"required,gt=0"`
	Weight   *float64  `json:"weight" binding:"required,gte=0"`
	Date     time.Time `json:"date" binding:"required"`
}

func (w *WorkoutController) LogWorkout(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var body workoutPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	entry, err := w.Svc.Log(userID, services.WorkoutInput{
		Exercise: body.Exercise,
		Sets:     body.Sets,
		Reps:     body.Reps,
		Weight:   *body.Weight,
		Date:     body.Date,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error saving workout"})
		return
	}

	w.RT.BroadcastUpdate(userID, "workout.logged", entry)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": entry})
}

func (w *WorkoutController) ListWorkouts(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	entries, err := w.Svc.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching workouts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

func (w *WorkoutController) DeleteWorkout(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var body struct {
		ID *uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ID"})
		return
	}

	entry, err := w.Svc.Delete(userID, *body.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting workout"})
		return
	}

	w.RT.BroadcastUpdate(userID, "workout.deleted", entry)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}
