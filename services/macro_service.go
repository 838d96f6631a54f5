package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
)

// MacroEstimate carries the four extracted nutrition fields. A nil field
// means the completion did not contain a parseable value for that label;
// callers must not conflate that with zero.
type MacroEstimate struct {
	Calories *int `json:"calories"`
	Protein  *int `json:"protein"`
	Carbs    *int `json:"carbs"`
	Fat      *int `json:"fat"`
}

var (
	caloriesPattern = regexp.MustCompile(`(?i)Calories:\s*(\d+)`)
	proteinPattern  = regexp.MustCompile(`(?i)Protein:\s*(\d+)`)
	carbsPattern    = regexp.MustCompile(`(?i)Carbs:\s*(\d+)`)
	fatPattern      = regexp.MustCompile(`(?i)Fat:\s*(\d+)`)
)

// MacroService asks the completion API for the macro breakdown of a meal
// and pattern-matches the labeled lines out of the free-text answer.
// Unlike the numeric oracle there is no retry: one malformed response
// simply yields partially-absent fields.
type MacroService struct {
	cc *completionClient
}

func NewMacroService() *MacroService {
	return &MacroService{cc: newCompletionClient()}
}

func (s *MacroService) EstimateMacros(ctx context.Context, mealName, portion string) (MacroEstimate, error) {
	prompt := fmt.Sprintf(`Calculate the approximate calories, protein, carbs, and fat for a meal consisting of %s with a portion size of %s grams. Provide the values in the following format:
  Calories: <value>
  Protein: <value>
  Carbs: <value>
  Fat: <value>`, mealName, portion)

	text, err := s.cc.complete(ctx, []chatMessage{
		{Role: "user", Content: prompt},
	}, 100, 0.7)
	if err != nil {
		return MacroEstimate{}, err
	}

	return parseMacros(text), nil
}

// parseMacros extracts each field independently; a missing label leaves
// the field nil.
func parseMacros(text string) MacroEstimate {
	return MacroEstimate{
		Calories: matchInt(caloriesPattern, text),
		Protein:  matchInt(proteinPattern, text),
		Carbs:    matchInt(carbsPattern, text),
		Fat:      matchInt(fatPattern, text),
	}
}

func matchInt(re *regexp.Regexp, text string) *int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}
