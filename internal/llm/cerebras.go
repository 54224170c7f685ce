package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Kunnanan/Assessli-verse/internal/interview"
)

const endpoint = "https://api.cerebras.ai/v1/chat/completions"

// CerebrasClient calls Cerebras' OpenAI-compatible chat completions API.
// Construct one per model configuration (fast conversational vs report).
type CerebrasClient struct {
	HTTPClient  *http.Client
	APIKey      string
	Model       string
	Temperature float64
}

type chatCompletionsRequest struct {
	Model       string              `json:"model"`
	Messages    []interview.Message `json:"messages"`
	Temperature float64             `json:"temperature,omitempty"`
	Stream      bool                `json:"stream,omitempty"`
}

type chatChoice struct {
	Index        int               `json:"index"`
	FinishReason string            `json:"finish_reason"`
	Message      interview.Message `json:"message"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

func NewCerebrasClient(apiKey, model string, temperature float64) *CerebrasClient {
	return &CerebrasClient{
		HTTPClient:  &http.Client{Timeout: 60 * time.Second},
		APIKey:      apiKey,
		Model:       model,
		Temperature: temperature,
	}
}

// Complete sends the message sequence and returns the single completion text.
func (c *CerebrasClient) Complete(ctx context.Context, messages []interview.Message) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("cerebras api key missing")
	}

	reqBody, _ := json.Marshal(chatCompletionsRequest{
		Model:       c.Model,
		Messages:    messages,
		Temperature: c.Temperature,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("cerebras error: status=%d body=%s", resp.StatusCode, string(b))
	}
	var cr chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("cerebras: empty choices")
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}
