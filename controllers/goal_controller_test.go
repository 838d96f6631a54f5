package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aryan877/fit-track/middlewares"
	"github.com/aryan877/fit-track/models"
	"github.com/aryan877/fit-track/services"
	"github.com/aryan877/fit-track/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixedEstimator struct {
	values []int
	calls  int
}

func (f *fixedEstimator) Estimate(ctx context.Context, prompt string) (int, error) {
	if f.calls >= len(f.values) {
		return 0, services.ErrEstimationExhausted
	}
	v := f.values[f.calls]
	f.calls++
	return v, nil
}

func setupGoalRouter(t *testing.T, est services.NumericEstimator) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Goal{}))

	ctl := NewGoalController(services.NewGoalService(db, est), services.NewRealtimeHub())

	r := gin.New()
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	api.POST("/goals", ctl.HandleGoals)
	api.GET("/goals", ctl.GetGoal)
	api.DELETE("/goals", ctl.DeleteGoal)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authed {
		token, err := utils.GenerateJWT(1, "user@example.com")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestGoalEndpointRequiresIdentity(t *testing.T) {
	r, _ := setupGoalRouter(t, &fixedEstimator{values: []int{1800, 45}})

	w := doJSON(t, r, http.MethodPost, "/api/goals", `{"currentWeight":90,"desiredWeight":75}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGoalCalculateReturnsEstimatesWithoutPersisting(t *testing.T) {
	r, db := setupGoalRouter(t, &fixedEstimator{values: []int{1800, 45}})

	w := doJSON(t, r, http.MethodPost, "/api/goals",
		`{"action":"calculate","currentWeight":90,"desiredWeight":75}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dailyCalories":1800`)
	assert.Contains(t, w.Body.String(), `"dailyExerciseMinutes":45`)

	var count int64
	require.NoError(t, db.Model(&models.Goal{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestGoalCalculateRejectsMissingWeights(t *testing.T) {
	r, _ := setupGoalRouter(t, &fixedEstimator{values: []int{1800, 45}})

	w := doJSON(t, r, http.MethodPost, "/api/goals", `{"action":"calculate","currentWeight":90}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid data")
}

func TestGoalSaveEndToEnd(t *testing.T) {
	r, db := setupGoalRouter(t, &fixedEstimator{values: []int{1800, 45}})

	w := doJSON(t, r, http.MethodPost, "/api/goals",
		`{"currentWeight":90,"desiredWeight":75,"startDate":"2024-01-01","endDate":"2024-03-31"}`, true)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"dailyCalories":1800`)
	assert.Contains(t, w.Body.String(), `"dailyExerciseMinutes":45`)

	var goals []models.Goal
	require.NoError(t, db.Where("user_id = ?", 1).Find(&goals).Error)
	require.Len(t, goals, 1)
	assert.Equal(t, 1800.0, goals[0].DailyCalories)
	assert.Equal(t, 45, goals[0].DailyExerciseMinutes)
}

func TestGoalSaveSurfacesOracleExhaustion(t *testing.T) {
	r, db := setupGoalRouter(t, &fixedEstimator{}) // no values: exhausts immediately

	w := doJSON(t, r, http.MethodPost, "/api/goals",
		`{"currentWeight":90,"desiredWeight":75,"startDate":"2024-01-01","endDate":"2024-03-31"}`, true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to calculate goals")

	var count int64
	require.NoError(t, db.Model(&models.Goal{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestGetGoalReturnsNullWhenAbsent(t *testing.T) {
	r, _ := setupGoalRouter(t, &fixedEstimator{})

	w := doJSON(t, r, http.MethodGet, "/api/goals", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":null`)
}

func TestDeleteGoalNotFound(t *testing.T) {
	r, _ := setupGoalRouter(t, &fixedEstimator{})

	w := doJSON(t, r, http.MethodDelete, "/api/goals", "", true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Goal not found")
}

func TestDeleteGoalReturnsDeletedRow(t *testing.T) {
	r, db := setupGoalRouter(t, &fixedEstimator{values: []int{1800, 45}})

	w := doJSON(t, r, http.MethodPost, "/api/goals",
		`{"currentWeight":90,"desiredWeight":75,"startDate":"2024-01-01","endDate":"2024-03-31"}`, true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/goals", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dailyCalories":1800`)

	var count int64
	require.NoError(t, db.Model(&models.Goal{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
