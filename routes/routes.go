package routes

import (
	"github.com/aryan877/fit-track/controllers"
	"github.com/aryan877/fit-track/middlewares"
	"github.com/aryan877/fit-track/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	oracle := services.NewOracleService()

	authSvc := services.NewAuthService(db)
	workoutSvc := services.NewWorkoutService(db)
	nutritionSvc := services.NewNutritionService(db)
	macroSvc := services.NewMacroService()
	goalSvc := services.NewGoalService(db, oracle)

	authCtl := controllers.NewAuthController(authSvc)
	workoutCtl := controllers.NewWorkoutController(workoutSvc, hub)
	nutritionCtl := controllers.NewNutritionController(nutritionSvc, macroSvc, goalSvc, hub)
	goalCtl := controllers.NewGoalController(goalSvc, hub)
	fitnessCtl := controllers.NewFitnessController(workoutSvc, nutritionSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected API routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/workouts", workoutCtl.LogWorkout)
		api.GET("/workouts", workoutCtl.ListWorkouts)
		api.DELETE("/workouts", workoutCtl.DeleteWorkout)

		api.GET("/nutrition", nutritionCtl.GetNutrition)
		api.POST("/nutrition", nutritionCtl.SaveMeals)
		api.PATCH("/nutrition", nutritionCtl.UpdateMeal)
		api.DELETE("/nutrition", nutritionCtl.DeleteMeal)

		api.POST("/goals", goalCtl.HandleGoals)
		api.GET("/goals", goalCtl.GetGoal)
		api.DELETE("/goals", goalCtl.DeleteGoal)

		api.GET("/fitness", fitnessCtl.GetFitnessHistory)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/updates", realtimeCtl.UpdatesWS)
	}

	return r
}
