// Package assistant talks to an OpenAI-compatible chat completions API for
// the in-app nursery assistant.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = `You are the assistant of a plant nursery back office.
Help staff with plant care, inventory questions, billing and quotations.
Keep answers short and practical.`

var ErrNotConfigured = errors.New("assistant is not configured")

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client struct {
	URL        string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

func NewClient(url, apiKey, model string) *Client {
	return &Client{
		URL:    url,
		APIKey: apiKey,
		Model:  model,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.APIKey != "" && c.URL != ""
}

// Reply sends the prior turns plus the new user message and returns the
// model's answer.
func (c *Client) Reply(ctx context.Context, history []Message, userMessage string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: userMessage})

	requestBody := map[string]interface{}{
		"model":       c.Model,
		"messages":    messages,
		"max_tokens":  500,
		"temperature": 0.3,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no response from assistant")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
