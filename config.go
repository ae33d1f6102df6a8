package sheetson

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public endpoint of the Sheetson API.
	DefaultBaseURL = "https://api.sheetson.com/v2"

	// DefaultTimeout bounds a single request/response cycle when no custom
	// HTTP client is supplied.
	DefaultTimeout = 30 * time.Second
)

// Config represents configuration for the Sheetson client. Credentials are
// read-only after the client is constructed.
type Config struct {
	APIKey        string          // Sheetson API key (required)
	SpreadsheetID string          // Google Spreadsheet ID (required)
	BaseURL       string          // API endpoint (default: DefaultBaseURL)
	Timeout       time.Duration   // request timeout (default: DefaultTimeout); ignored when HTTPClient is set
	HTTPClient    *http.Client    // custom HTTP client (optional)
	Logger        *zerolog.Logger // per-request debug logging (default: no-op)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if strings.TrimSpace(c.SpreadsheetID) == "" {
		return ErrMissingSpreadsheetID
	}
	return nil
}

// ConfigFromEnv builds a Config from SHEETSON_* environment variables:
// SHEETSON_API_KEY, SHEETSON_SPREADSHEET_ID and optionally SHEETSON_BASE_URL
// and SHEETSON_TIMEOUT (a Go duration such as "15s").
func ConfigFromEnv() (*Config, error) {
	c := &Config{
		APIKey:        strings.TrimSpace(os.Getenv("SHEETSON_API_KEY")),
		SpreadsheetID: strings.TrimSpace(os.Getenv("SHEETSON_SPREADSHEET_ID")),
		BaseURL:       strings.TrimSpace(os.Getenv("SHEETSON_BASE_URL")),
	}

	if raw := strings.TrimSpace(os.Getenv("SHEETSON_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SHEETSON_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
