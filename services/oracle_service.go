package services

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// NumericEstimator is the capability the goal flow depends on. The
// production implementation wraps the completion API; tests substitute a
// deterministic stub without touching upsert or aggregation logic.
type NumericEstimator interface {
	Estimate(ctx context.Context, prompt string) (int, error)
}

// ErrEstimationExhausted is returned once every retry attempt has failed.
// Callers surface it to the user instead of substituting a default.
var ErrEstimationExhausted = errors.New("estimation exhausted")

const oracleMaxAttempts = 3

const oracleSystemPrompt = "You are a helpful assistant that provides only numeric answers without any additional text."

// OracleService extracts a single positive integer from the free-text
// output of the completion API, retrying malformed responses.
type OracleService struct {
	cc *completionClient
}

func NewOracleService() *OracleService {
	return &OracleService{cc: newCompletionClient()}
}

func (s *OracleService) Estimate(ctx context.Context, prompt string) (int, error) {
	for attempt := 1; attempt <= oracleMaxAttempts; attempt++ {
		text, err := s.cc.complete(ctx, []chatMessage{
			{Role: "system", Content: oracleSystemPrompt},
			{Role: "user", Content: prompt},
		}, 20, 0.3)
		if err == nil {
			n, ok := parseLeadingInt(text)
			if ok && n > 0 {
				return n, nil
			}
			err = fmt.Errorf("invalid numeric answer: %q", text)
		}
		log.Printf("oracle estimate attempt %d/%d failed: %v", attempt, oracleMaxAttempts, err)
	}
	return 0, ErrEstimationExhausted
}

// parseLeadingInt reads an optionally signed integer prefix, ignoring
// trailing text ("1800 kcal" parses as 1800). A response with no leading
// digits fails.
func parseLeadingInt(s string) (int, bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
