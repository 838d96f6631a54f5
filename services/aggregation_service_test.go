package services

import (
	"testing"
	"time"

	"github.com/aryan877/fit-track/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayAt(day int, hour int) time.Time {
	return time.Date(2024, time.March, day, hour, 30, 0, 0, time.UTC)
}

func TestAggregateNutritionByDaySumsAbsentAsZero(t *testing.T) {
	entries := []models.NutritionEntry{
		{Date: dayAt(5, 8), Calories: floatPtr(500), Protein: floatPtr(20)},
		{Date: dayAt(5, 13)}, // unestimated meal
		{Date: dayAt(5, 19), Calories: floatPtr(300), Fat: floatPtr(10)},
	}

	out := AggregateNutritionByDay(entries)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-03-05", out[0].Date)
	assert.Equal(t, 800.0, out[0].TotalCalories)
	assert.Equal(t, 20.0, out[0].Protein)
	assert.Equal(t, 0.0, out[0].Carbs)
	assert.Equal(t, 10.0, out[0].Fat)
}

func TestAggregateNutritionByDayFirstSeenOrder(t *testing.T) {
	entries := []models.NutritionEntry{
		{Date: dayAt(7, 9), Calories: floatPtr(400)},
		{Date: dayAt(3, 12), Calories: floatPtr(600)},
		{Date: dayAt(7, 20), Calories: floatPtr(200)},
	}

	out := AggregateNutritionByDay(entries)
	require.Len(t, out, 2)
	assert.Equal(t, "2024-03-07", out[0].Date)
	assert.Equal(t, 600.0, out[0].TotalCalories)
	assert.Equal(t, "2024-03-03", out[1].Date)
}

func TestAggregateNutritionByDayIsPure(t *testing.T) {
	entries := []models.NutritionEntry{
		{Date: dayAt(1, 7), Calories: floatPtr(350), Protein: floatPtr(15)},
		{Date: dayAt(2, 8), Calories: floatPtr(450)},
	}

	first := AggregateNutritionByDay(entries)
	second := AggregateNutritionByDay(entries)
	assert.Equal(t, first, second)
}

func TestAggregateWorkoutsByBodyPart(t *testing.T) {
	entries := []models.WorkoutEntry{
		{Exercise: "Bench Press", Sets: 4, Date: dayAt(1, 10)},
		{Exercise: "Bench Press", Sets: 3, Date: dayAt(3, 10)},
		{Exercise: "Squat", Sets: 5, Date: dayAt(2, 10)},
		{Exercise: "Chest Fly", Sets: 3, Date: dayAt(3, 11)},
	}

	out := AggregateWorkoutsByBodyPart(entries)
	require.Len(t, out, 2)

	assert.Equal(t, "chest", out[0].BodyPart)
	assert.Equal(t, 10, out[0].TotalSets)
	assert.Equal(t, []string{"Bench Press", "Chest Fly"}, out[0].Exercises)

	assert.Equal(t, "legs", out[1].BodyPart)
	assert.Equal(t, 5, out[1].TotalSets)
	assert.Equal(t, []string{"Squat"}, out[1].Exercises)
}

func TestAggregateWorkoutsCountsMultiCategoryExercises(t *testing.T) {
	// Dips sit in both the chest and arms lists; the classification loop
	// counts them in each.
	entries := []models.WorkoutEntry{
		{Exercise: "Dips", Sets: 3, Date: dayAt(4, 17)},
	}

	out := AggregateWorkoutsByBodyPart(entries)
	require.Len(t, out, 2)
	assert.Equal(t, "chest", out[0].BodyPart)
	assert.Equal(t, 3, out[0].TotalSets)
	assert.Equal(t, "arms", out[1].BodyPart)
	assert.Equal(t, 3, out[1].TotalSets)
}

func TestAggregateWorkoutsIgnoresUnknownExercises(t *testing.T) {
	entries := []models.WorkoutEntry{
		{Exercise: "Underwater Basket Weaving", Sets: 2, Date: dayAt(4, 17)},
	}

	out := AggregateWorkoutsByBodyPart(entries)
	assert.Empty(t, out)
}

func TestAggregateEmptyInputs(t *testing.T) {
	assert.Empty(t, AggregateNutritionByDay(nil))
	assert.Empty(t, AggregateWorkoutsByBodyPart(nil))
}
