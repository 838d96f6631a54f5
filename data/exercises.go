// Package data holds the static exercise→body-part classification table
// consumed read-only by the workout aggregation.
package data

// BodyParts fixes the iteration order used when classifying workout
// entries. An exercise listed under more than one body part is counted
// in each.
var BodyParts = []string{"chest", "back", "legs", "shoulders", "arms", "core"}

var ExercisesByBodyPart = map[string][]string{
	"chest": {
		"Bench Press",
		"Incline Bench Press",
		"Dumbbell Press",
		"Chest Fly",
		"Cable Crossover",
		"Push Up",
		"Dips",
	},
	"back": {
		"Deadlift",
		"Pull Up",
		"Chin Up",
		"Bent Over Row",
		"Lat Pulldown",
		"Seated Cable Row",
		"T-Bar Row",
	},
	"legs": {
		"Squat",
		"Front Squat",
		"Leg Press",
		"Lunges",
		"Leg Extension",
		"Leg Curl",
		"Romanian Deadlift",
		"Calf Raise",
	},
	"shoulders": {
		"Overhead Press",
		"Arnold Press",
		"Lateral Raise",
		"Front Raise",
		"Rear Delt Fly",
		"Upright Row",
		"Shrugs",
	},
	"arms": {
		"Bicep Curl",
		"Hammer Curl",
		"Preacher Curl",
		"Tricep Pushdown",
		"Tricep Extension",
		"Skull Crusher",
		"Dips",
	},
	"core": {
		"Plank",
		"Crunch",
		"Sit Up",
		"Russian Twist",
		"Leg Raise",
		"Mountain Climber",
		"Cable Crunch",
	},
}

// ExercisesFor returns the list for one body part (nil when unknown).
func ExercisesFor(bodyPart string) []string {
	return ExercisesByBodyPart[bodyPart]
}
