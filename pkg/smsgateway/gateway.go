package smsgateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Gateway sends short text notifications to members' phones. Delivery is
// best-effort; callers must not fail their own operation on a send error.
type Gateway interface {
	SendSMS(phone, message string) (string, error)
}

// HTTPGateway posts messages to a JSON SMS provider endpoint authenticated
// with a static API key.
type HTTPGateway struct {
	BaseURL    string
	APIKey     string
	httpClient *http.Client
}

// MockGateway records sends without reaching any provider. Used in
// development and tests.
type MockGateway struct {
	Sent []string
}

// NewHTTPGateway creates a gateway for the given provider endpoint.
func NewHTTPGateway(baseURL, apiKey string) *HTTPGateway {
	return &HTTPGateway{
		BaseURL: baseURL,
		APIKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewMockGateway creates a mock gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// SendSMS posts the message to the provider and returns its message id.
func (g *HTTPGateway) SendSMS(phone, message string) (string, error) {
	requestBody := map[string]string{
		"phoneNumber": phone,
		"message":     message,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, g.BaseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", g.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		MessageID string `json:"messageId"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return response.MessageID, nil
}

// SendSMS records the message and returns a synthetic message id.
func (g *MockGateway) SendSMS(phone, message string) (string, error) {
	g.Sent = append(g.Sent, fmt.Sprintf("%s: %s", phone, message))
	return fmt.Sprintf("MOCK-MSG-%d", len(g.Sent)), nil
}
