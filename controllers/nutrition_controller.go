// controllers/nutrition_controller.go
package controllers

import (
	"net/http"

	"github.com/aryan877/fit-track/middlewares"
	"github.com/aryan877/fit-track/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NutritionController struct {
	Svc   *services.NutritionService
	Macro *services.MacroService
	Goals *services.GoalService
	RT    *services.RealtimeHub
}

func NewNutritionController(svc *services.NutritionService, macro *services.MacroService, goals *services.GoalService, rt *services.RealtimeHub) *NutritionController {
	return &NutritionController{Svc: svc, Macro: macro, Goals: goals, RT: rt}
}

type mealPayload struct {
	ID       uint     `json:"id"`
	MealType string   `json:"mealType" binding:"required,oneof=breakfast lunch dinner"`
	MealName string   `json:"mealName" binding:"required"`
	Portion  float64  `json:"portion" binding:"required,gt=0"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

func (p mealPayload) toInput() services.MealInput {
	return services.MealInput{
		ID:       p.ID,
		MealType: p.MealType,
		MealName: p.MealName,
		Portion:  p.Portion,
		Calories: p.Calories,
		Protein:  p.Protein,
		Carbs:    p.Carbs,
		Fat:      p.Fat,
	}
}

// GetNutrition serves two reads from one route, matching the existing
// surface: with mealName+portion query params it runs the macro
// estimation, otherwise it returns today's meals plus the user's goal.
func (n *NutritionController) GetNutrition(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	mealName := c.Query("mealName")
	portion := c.Query("portion")

	if mealName != "" && portion != "" {
		est, err := n.Macro.EstimateMacros(c.Request.Context(), mealName, portion)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching nutrition data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": []gin.H{{
				"mealName": mealName,
				"portion":  portion,
				"calories": est.Calories,
				"protein":  est.Protein,
				"carbs":    est.Carbs,
				"fat":      est.Fat,
			}},
		})
		return
	}

	meals, err := n.Svc.ListToday(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching today's meals and goal"})
		return
	}
	goal, err := n.Goals.GetGoal(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching today's meals and goal"})
		return
	}

	var goalOut any
	if goal != nil {
		goalOut = goal
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"meals": meals, "goal": goalOut},
	})
}

func (n *NutritionController) SaveMeals(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var body struct {
		Meals []mealPayload `json:"meals" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid meals data"})
		return
	}

	inputs := make([]services.MealInput, 0, len(body.Meals))
	for _, m := range body.Meals {
		inputs = append(inputs, m.toInput())
	}

	entries, err := n.Svc.SaveMeals(userID, inputs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error saving nutrition entries"})
		return
	}

	n.RT.BroadcastUpdate(userID, "nutrition.saved", entries)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": entries})
}

func (n *NutritionController) UpdateMeal(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var body mealPayload
	if err := c.ShouldBindJSON(&body); err != nil || body.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid data"})
		return
	}

	entry, err := n.Svc.UpdateEntry(userID, body.toInput())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating meal"})
		return
	}

	n.RT.BroadcastUpdate(userID, "nutrition.updated", entry)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}

func (n *NutritionController) DeleteMeal(c *gin.Context) {
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

	entry, err := n.Svc.Delete(userID, *body.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting meal"})
		return
	}

	n.RT.BroadcastUpdate(userID, "nutrition.deleted", entry)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}
