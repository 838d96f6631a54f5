package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// completionClient is the thin HTTP wrapper shared by the numeric oracle
// and the macro extractor. The completion API is treated as an untrusted
// collaborator: callers get back raw text and do their own parsing.
type completionClient struct {
	client  *http.Client
	apiKey  string
	model   string
	baseURL string
}

func newCompletionClient() *completionClient {
	base := os.Getenv("OPENAI_BASE_URL")
	if base == "" {
		base = "https://api.openai.com"
	}
	return &completionClient{
		client:  &http.Client{Timeout: 15 * time.Second},
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		model:   "gpt-3.5-turbo",
		baseURL: strings.TrimRight(base, "/"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	N           int           `json:"n"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete posts one chat completion and returns the trimmed text of the
// first choice.
func (cc *completionClient) complete(ctx context.Context, messages []chatMessage, maxTokens int, temperature float64) (string, error) {
	payload := chatRequest{
		Model:       cc.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		N:           1,
		Temperature: temperature,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", cc.baseURL+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cc.apiKey)

	resp, err := cc.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("completion api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("completion api error (%d): %s", resp.StatusCode, string(body))
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode completion response error: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
