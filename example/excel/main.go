package main

import (
	"context"
	"fmt"
	"log"

	sheetson "github.com/Mr-KAM/go-sheetson"
	"github.com/Mr-KAM/go-sheetson/adapters/excel"
	"github.com/joho/godotenv"
)

// Bulk-imports the rows of a local Excel workbook into a remote sheet using
// chunked batch creates.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	_ = godotenv.Load()
	config, err := sheetson.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := sheetson.New(config)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	adapter, err := excel.New(&excel.Config{
		FilePath:  "./cities.xlsx",
		SheetName: "cities",
	})
	if err != nil {
		return fmt.Errorf("failed to create Excel adapter: %w", err)
	}

	frame, err := adapter.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load workbook: %w", err)
	}
	fmt.Printf("Loaded %d rows (%v)\n", frame.Len(), frame.Columns())

	results, err := client.CreateRowsFromFrame(ctx, "Cities", frame, 100)
	for i, result := range results {
		fmt.Printf("Batch %d: %d/%d operations succeeded\n",
			i+1, result.SuccessfulOperations, result.TotalOperations)
	}
	if err != nil {
		return fmt.Errorf("bulk import failed: %w", err)
	}

	return nil
}
