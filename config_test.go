package sheetson_test

import (
	"testing"
	"time"

	sheetson "github.com/Mr-KAM/go-sheetson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("complete environment", func(t *testing.T) {
		t.Setenv("SHEETSON_API_KEY", "env-key")
		t.Setenv("SHEETSON_SPREADSHEET_ID", "env-spreadsheet")
		t.Setenv("SHEETSON_BASE_URL", "https://sheetson.example.com/v2")
		t.Setenv("SHEETSON_TIMEOUT", "15s")

		config, err := sheetson.ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "env-key", config.APIKey)
		assert.Equal(t, "env-spreadsheet", config.SpreadsheetID)
		assert.Equal(t, "https://sheetson.example.com/v2", config.BaseURL)
		assert.Equal(t, 15*time.Second, config.Timeout)
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Setenv("SHEETSON_API_KEY", "")
		t.Setenv("SHEETSON_SPREADSHEET_ID", "env-spreadsheet")

		_, err := sheetson.ConfigFromEnv()
		require.ErrorIs(t, err, sheetson.ErrMissingAPIKey)
	})

	t.Run("missing spreadsheet id", func(t *testing.T) {
		t.Setenv("SHEETSON_API_KEY", "env-key")
		t.Setenv("SHEETSON_SPREADSHEET_ID", "  ")

		_, err := sheetson.ConfigFromEnv()
		require.ErrorIs(t, err, sheetson.ErrMissingSpreadsheetID)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("SHEETSON_API_KEY", "env-key")
		t.Setenv("SHEETSON_SPREADSHEET_ID", "env-spreadsheet")
		t.Setenv("SHEETSON_TIMEOUT", "soon")

		_, err := sheetson.ConfigFromEnv()
		require.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	config := &sheetson.Config{APIKey: "k", SpreadsheetID: "s"}
	require.NoError(t, config.Validate())
}
