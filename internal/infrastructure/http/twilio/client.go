package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"farm_hub/internal/config"
	"farm_hub/internal/infrastructure/http/connector"
)

// Client talks to the Twilio Messages REST API.
type Client struct {
	http *connector.HTTPClient
	cfg  config.TwilioConfig
}

func NewClient(cfg config.TwilioConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: connector.NewHTTPClient(connector.HTTPClientConfig{Timeout: cfg.Timeout}),
	}
}

type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type errorResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
}

// APIError is a non-2xx answer from Twilio.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twilio api status %d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

// SendMessage sends body from -> to and returns the message SID.
func (c *Client) SendMessage(ctx context.Context, from, to, body string) (string, error) {
	if c.cfg.AccountSID == "" || c.cfg.AuthToken == "" {
		return "", fmt.Errorf("twilio account sid or auth token is empty")
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(c.cfg.AccountSID))

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	resp, err := c.http.PostForm(ctx, endpoint, form, &connector.BasicAuth{
		Username: c.cfg.AccountSID,
		Password: c.cfg.AuthToken,
	})
	if err != nil {
		return "", fmt.Errorf("call twilio api: %w", err)
	}

	if !resp.IsSuccess() {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody errorResponse
		if json.Unmarshal(resp.Body, &errBody) == nil {
			apiErr.Code = errBody.Code
			apiErr.Message = errBody.Message
		}
		return "", apiErr
	}

	var msg messageResponse
	if err := json.Unmarshal(resp.Body, &msg); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return msg.SID, nil
}
