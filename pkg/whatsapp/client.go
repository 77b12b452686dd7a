package whatsapp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	BaseURL    string
	Username   string
	Password   string
	Path       string
	HTTPClient *http.Client
}

type SendMessageRequest struct {
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	IsForwarded bool   `json:"is_forwarded"`
	Duration    int    `json:"duration"`
}

type SendMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		MessageID string `json:"message_id"`
		Status    string `json:"status"`
	} `json:"data"`
}

func NewClient(baseURL, username, password, path string) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Username: username,
		Password: password,
		Path:     strings.Trim(path, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NormalizePhone converts local Indian numbers (0xxxxxxxxxx or a bare
// 10-digit mobile) to the 91xxxxxxxxxx form. Spaces, dashes and a leading
// plus are dropped.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		return "91" + digits[1:]
	case len(digits) == 10:
		return "91" + digits
	}
	return digits
}

// Send message via WhatsApp
func (c *Client) SendMessage(ctx context.Context, phone, message string, isForwarded bool, duration int) (*SendMessageResponse, error) {
	requestData := SendMessageRequest{
		Phone:       NormalizePhone(phone) + "@s.whatsapp.net",
		Message:     message,
		IsForwarded: isForwarded,
		Duration:    duration,
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request data: %w", err)
	}

	url := fmt.Sprintf("%s/%s/send/message", c.BaseURL, c.Path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	auth := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password))
	req.Header.Set("Authorization", "Basic "+auth)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("whatsapp gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var response SendMessageResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &response, nil
}

// Send simple text message
func (c *Client) SendTextMessage(ctx context.Context, phone, message string) error {
	_, err := c.SendMessage(ctx, phone, message, false, 0)
	return err
}
