package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"

	sheetson "github.com/Mr-KAM/go-sheetson"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	// Load credentials from .env / environment:
	// SHEETSON_API_KEY, SHEETSON_SPREADSHEET_ID
	_ = godotenv.Load()
	config, err := sheetson.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	config.Logger = &logger

	client, err := sheetson.New(config)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	// Create a new row
	created, err := client.CreateRow(ctx, "Cities", map[string]any{
		"name":       "San Francisco",
		"country":    "USA",
		"population": 815000,
	})
	if err != nil {
		return fmt.Errorf("failed to create row: %w", err)
	}
	fmt.Printf("Created row %d: %s\n", created.Index, created.GetAsString("name", "?"))

	// Read it back
	row, err := client.GetRow(ctx, "Cities", created.Index, url.Values{})
	if err != nil {
		return fmt.Errorf("failed to get row: %w", err)
	}
	fmt.Printf("Row %d population: %d\n", row.Index, row.GetAsInt64("population", 0))

	// Update a single field
	if _, err := client.UpdateRow(ctx, "Cities", created.Index, map[string]any{
		"population": 820000,
	}); err != nil {
		return fmt.Errorf("failed to update row: %w", err)
	}

	// Search with a filter expression
	found, err := client.SearchRows(ctx, "Cities", sheetson.Where{
		"country":    sheetson.Eq("USA"),
		"population": sheetson.Gte(500_000).Lte(10_000_000),
	}, &sheetson.ListOptions{OrderBy: "population", Desc: true, Limit: 10})
	if err != nil {
		return fmt.Errorf("failed to search rows: %w", err)
	}
	fmt.Printf("Found %d US cities with 0.5M-10M people:\n", len(found.Results))
	for _, r := range found.Results {
		fmt.Printf("  Row %d: %s (%d)\n", r.Index, r.GetAsString("name", "?"), r.GetAsInt64("population", 0))
	}

	// Paginate through the whole sheet, 100 rows at a time
	for skip := 0; ; skip += 100 {
		page, err := client.ListRows(ctx, "Cities", &sheetson.ListOptions{Skip: skip, Limit: 100})
		if err != nil {
			return fmt.Errorf("failed to list rows: %w", err)
		}
		fmt.Printf("Page at skip=%d: %d rows\n", skip, len(page.Results))
		if len(page.Results) < 100 {
			break
		}
	}

	// Delete the row we created
	if _, err := client.DeleteRow(ctx, "Cities", created.Index); err != nil {
		return fmt.Errorf("failed to delete row: %w", err)
	}
	if _, err := client.GetRow(ctx, "Cities", created.Index, nil); errors.Is(err, sheetson.ErrRowNotFound) {
		fmt.Println("Row deleted")
	}

	return nil
}
