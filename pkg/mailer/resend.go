package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultResendBaseURL is the Resend REST endpoint.
const DefaultResendBaseURL = "https://api.resend.com"

// ResendClient talks to the Resend HTTP API directly.
type ResendClient struct {
	APIKey     string
	BaseURL    string
	httpClient *http.Client
}

// NewResendClient creates a ResendClient. An empty apiKey yields a client
// whose Send always returns ErrNotConfigured.
func NewResendClient(apiKey string) *ResendClient {
	return &ResendClient{
		APIKey:     apiKey,
		BaseURL:    DefaultResendBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

var _ Sender = (*ResendClient)(nil)

func (c *ResendClient) Configured() bool {
	return c.APIKey != ""
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type resendError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// Send posts the email to /emails. A non-2xx answer is returned as an error
// carrying the provider's message.
func (c *ResendClient) Send(ctx context.Context, email Email) (SendResult, error) {
	if !c.Configured() {
		return SendResult{}, ErrNotConfigured
	}
	if len(email.To) == 0 {
		return SendResult{}, errors.New("mailer: no recipients")
	}

	body, err := json.Marshal(resendRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
		ReplyTo: email.ReplyTo,
	})
	if err != nil {
		return SendResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return SendResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SendResult{}, fmt.Errorf("mailer: resend request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return SendResult{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr resendError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return SendResult{}, fmt.Errorf("mailer: resend %d %s: %s", resp.StatusCode, apiErr.Name, apiErr.Message)
		}
		return SendResult{}, fmt.Errorf("mailer: resend returned status %d", resp.StatusCode)
	}

	var result SendResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return SendResult{}, fmt.Errorf("mailer: decode resend response: %w", err)
	}
	if result.ID == "" {
		return SendResult{}, errors.New("mailer: resend response missing id")
	}
	return result, nil
}
