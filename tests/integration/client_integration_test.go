package integration

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	sheetson "github.com/Mr-KAM/go-sheetson"
	"github.com/joho/godotenv"
)

// Exercises the real Sheetson API. Requires SHEETSON_API_KEY,
// SHEETSON_SPREADSHEET_ID and SHEETSON_TEST_SHEET; skipped otherwise. The
// test sheet must be a tab the API key can write to.
func newLiveClient(t *testing.T) (*sheetson.Client, string) {
	t.Helper()

	_ = godotenv.Load("../../.env")

	sheet := os.Getenv("SHEETSON_TEST_SHEET")
	if os.Getenv("SHEETSON_API_KEY") == "" || os.Getenv("SHEETSON_SPREADSHEET_ID") == "" || sheet == "" {
		t.Skip("SHEETSON_API_KEY, SHEETSON_SPREADSHEET_ID and SHEETSON_TEST_SHEET not set, skipping live test")
	}

	config, err := sheetson.ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}

	client, err := sheetson.New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client, sheet
}

func TestLive_RowLifecycle(t *testing.T) {
	client, sheet := newLiveClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	marker := fmt.Sprintf("it-%d", time.Now().UnixNano())

	created, err := client.CreateRow(ctx, sheet, map[string]any{
		"name":    marker,
		"country": "Testland",
	})
	if err != nil {
		t.Fatalf("CreateRow() error = %v", err)
	}
	if created.Index < 2 {
		t.Fatalf("CreateRow() assigned row %d, want >= 2", created.Index)
	}

	// Created fields must survive the round trip.
	got, err := client.GetRow(ctx, sheet, created.Index, url.Values{})
	if err != nil {
		t.Fatalf("GetRow() error = %v", err)
	}
	if got.GetAsString("name", "") != marker {
		t.Errorf("GetRow() name = %q, want %q", got.GetAsString("name", ""), marker)
	}

	// Partial update leaves other fields unchanged.
	if _, err := client.UpdateRow(ctx, sheet, created.Index, map[string]any{"country": "Updatedland"}); err != nil {
		t.Fatalf("UpdateRow() error = %v", err)
	}
	got, err = client.GetRow(ctx, sheet, created.Index, nil)
	if err != nil {
		t.Fatalf("GetRow() after update error = %v", err)
	}
	if got.GetAsString("country", "") != "Updatedland" {
		t.Errorf("country = %q, want Updatedland", got.GetAsString("country", ""))
	}
	if got.GetAsString("name", "") != marker {
		t.Errorf("name changed by partial update: %q", got.GetAsString("name", ""))
	}

	// Search for the marker row.
	found, err := client.SearchRows(ctx, sheet, sheetson.Where{"name": sheetson.Eq(marker)}, nil)
	if err != nil {
		t.Fatalf("SearchRows() error = %v", err)
	}
	if len(found.Results) != 1 {
		t.Errorf("SearchRows() found %d rows, want 1", len(found.Results))
	}

	// Delete and verify the row is gone.
	if _, err := client.DeleteRow(ctx, sheet, created.Index); err != nil {
		t.Fatalf("DeleteRow() error = %v", err)
	}
	if _, err := client.GetRow(ctx, sheet, created.Index, nil); err == nil {
		t.Log("GetRow() after delete succeeded; a following row may have shifted into the slot")
	} else if !errors.Is(err, sheetson.ErrRowNotFound) {
		var remoteErr *sheetson.RemoteError
		if !errors.As(err, &remoteErr) {
			t.Errorf("GetRow() after delete error = %v, want RemoteError", err)
		}
	}
}

func TestLive_ListPagination(t *testing.T) {
	client, sheet := newLiveClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	first, err := client.ListRows(ctx, sheet, &sheetson.ListOptions{Limit: 2})
	if err != nil {
		t.Fatalf("ListRows() error = %v", err)
	}
	if len(first.Results) > 2 {
		t.Errorf("ListRows() returned %d rows, limit was 2", len(first.Results))
	}
}
