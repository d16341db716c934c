package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"farm_hub/internal/config"
)

// ValueStore is the part of a spreadsheet the repositories need.
type ValueStore interface {
	ReadRange(ctx context.Context, rng string) ([][]interface{}, error)
	AppendRow(ctx context.Context, rng string, row []interface{}) error
}

// Client is a ValueStore backed by the Google Sheets v4 API.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewClient authenticates with the configured service account.
func NewClient(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	if !cfg.HasCredentials() {
		return nil, fmt.Errorf("google service account email or private key is empty")
	}

	jwtCfg := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	return NewClientWithOptions(ctx, cfg.SpreadsheetID, option.WithHTTPClient(jwtCfg.Client(ctx)))
}

// NewClientWithOptions builds a client for spreadsheetID with explicit API options.
func NewClientWithOptions(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is empty")
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (c *Client) ReadRange(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", rng, err)
	}
	return resp.Values, nil
}

func (c *Client) AppendRow(ctx context.Context, rng string, row []interface{}) error {
	body := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", rng, err)
	}
	return nil
}
