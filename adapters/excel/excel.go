// Package excel loads tabular data from .xlsx workbooks into a sheetson.Frame
// for bulk row creation. The first row of the sheet is treated as the header.
package excel

import (
	"context"
	"fmt"
	"strconv"

	sheetson "github.com/Mr-KAM/go-sheetson"
	"github.com/xuri/excelize/v2"
)

// Adapter reads one sheet of an Excel workbook.
type Adapter struct {
	config *Config
}

// New creates a new Excel adapter with the given configuration
func New(config *Config) (*Adapter, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	configCopy := *config

	return &Adapter{
		config: &configCopy,
	}, nil
}

// Load reads the configured sheet into a frame. Columns with an empty header
// cell are skipped; empty data cells become nil. Cell values are parsed into
// int64, float64 or bool where possible and kept as strings otherwise.
func (a *Adapter) Load(ctx context.Context) (*sheetson.Frame, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	f, err := excelize.OpenFile(a.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetIndex, err := f.GetSheetIndex(a.config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get sheet index: %w", err)
	}
	if sheetIndex == -1 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, a.config.SheetName)
	}

	rows, err := f.GetRows(a.config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeaderRow
	}

	header := rows[0]

	// Keep the positions of named columns only.
	var columns []string
	var positions []int
	for j, name := range header {
		if name == "" {
			continue
		}
		columns = append(columns, name)
		positions = append(positions, j)
	}
	if len(columns) == 0 {
		return nil, ErrNoHeaderRow
	}

	frame := sheetson.NewFrame(columns...)

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue // skip empty rows
		}

		values := make([]any, len(positions))
		for k, j := range positions {
			if j >= len(row) || row[j] == "" {
				values[k] = nil
				continue
			}
			values[k] = parseCell(row[j])
		}

		if err := frame.Append(values...); err != nil {
			return nil, fmt.Errorf("failed to append row %d: %w", i+1, err)
		}
	}

	return frame, nil
}

// parseCell converts a cell's string representation into a typed value.
func parseCell(value string) any {
	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		if intVal := int64(floatVal); float64(intVal) == floatVal {
			return intVal
		}
		return floatVal
	}
	if value == "true" || value == "TRUE" {
		return true
	}
	if value == "false" || value == "FALSE" {
		return false
	}
	return value
}
