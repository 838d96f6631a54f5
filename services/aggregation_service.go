package services

import (
	"github.com/aryan877/fit-track/data"
	"github.com/aryan877/fit-track/models"
)

// DailyNutritionSummary is one chart point: macro totals for a single
// calendar day.
type DailyNutritionSummary struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"totalCalories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
}

// BodyPartSummary accumulates a body-part group: summed sets plus the
// distinct exercise names performed.
type BodyPartSummary struct {
	BodyPart  string   `json:"bodyPart"`
	TotalSets int      `json:"totalSets"`
	Exercises []string `json:"exercises"`
}

// AggregateNutritionByDay groups entries by the UTC calendar day of
// their stored timestamp and sums macros. Absent macro fields count as 0
// here: a chart total needs a numeric default even though the extractor
// keeps "unknown" distinct from zero. Output order is first-seen day.
// Pure function, no I/O.
func AggregateNutritionByDay(entries []models.NutritionEntry) []DailyNutritionSummary {
	idx := make(map[string]int, len(entries))
	out := make([]DailyNutritionSummary, 0, len(entries))

	for _, e := range entries {
		day := e.Date.UTC().Format("2006-01-02")
		i, ok := idx[day]
		if !ok {
			i = len(out)
			idx[day] = i
			out = append(out, DailyNutritionSummary{Date: day})
		}
		out[i].TotalCalories += macroValue(e.Calories)
		out[i].Protein += macroValue(e.Protein)
		out[i].Carbs += macroValue(e.Carbs)
		out[i].Fat += macroValue(e.Fat)
	}
	return out
}

// AggregateWorkoutsByBodyPart classifies entries against the static
// exercise catalog. The matching loop does not enforce exclusivity: an
// exercise listed under several body parts is counted in each. Groups
// appear in first-seen order; exercise names within a group are distinct
// and first-seen ordered. Pure function, no I/O.
func AggregateWorkoutsByBodyPart(entries []models.WorkoutEntry) []BodyPartSummary {
	idx := make(map[string]int)
	seen := make(map[string]map[string]struct{})
	var out []BodyPartSummary

	for _, e := range entries {
		for _, bodyPart := range data.BodyParts {
			if !containsExercise(data.ExercisesFor(bodyPart), e.Exercise) {
				continue
			}
			i, ok := idx[bodyPart]
			if !ok {
				i = len(out)
				idx[bodyPart] = i
				out = append(out, BodyPartSummary{BodyPart: bodyPart})
				seen[bodyPart] = make(map[string]struct{})
			}
			out[i].TotalSets += e.Sets
			if _, dup := seen[bodyPart][e.Exercise]; !dup {
				seen[bodyPart][e.Exercise] = struct{}{}
				out[i].Exercises = append(out[i].Exercises, e.Exercise)
			}
		}
	}
	return out
}

func macroValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func containsExercise(list []string, name string) bool {
	for _, e := range list {
		if e == name {
			return true
		}
	}
	return false
}
