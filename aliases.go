package sheetson

import (
	"context"
	"net/url"
)

// Functional aliases mirroring the Client methods for one-off calls. Each
// alias builds a client with default settings and forwards to it; construct a
// Client directly when issuing more than a handful of requests.

func aliasClient(apiKey, spreadsheetID string) (*Client, error) {
	return New(&Config{APIKey: apiKey, SpreadsheetID: spreadsheetID})
}

// CreateRow creates a row using a one-off client.
func CreateRow(ctx context.Context, apiKey, spreadsheetID, sheet string, data map[string]any) (*Row, error) {
	client, err := aliasClient(apiKey, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return client.CreateRow(ctx, sheet, data)
}

// GetRow retrieves a row using a one-off client.
func GetRow(ctx context.Context, apiKey, spreadsheetID, sheet string, rowNumber int) (*Row, error) {
	client, err := aliasClient(apiKey, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return client.GetRow(ctx, sheet, rowNumber, url.Values{})
}

// UpdateRow updates a row using a one-off client.
func UpdateRow(ctx context.Context, apiKey, spreadsheetID, sheet string, rowNumber int, data map[string]any) (*Row, error) {
	client, err := aliasClient(apiKey, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return client.UpdateRow(ctx, sheet, rowNumber, data)
}

// DeleteRow deletes a row using a one-off client.
func DeleteRow(ctx context.Context, apiKey, spreadsheetID, sheet string, rowNumber int) (map[string]any, error) {
	client, err := aliasClient(apiKey, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return client.DeleteRow(ctx, sheet, rowNumber)
}

// ListRows lists rows using a one-off client.
func ListRows(ctx context.Context, apiKey, spreadsheetID, sheet string, opts *ListOptions) (*ListResult, error) {
	client, err := aliasClient(apiKey, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return client.ListRows(ctx, sheet, opts)
}

// SearchRows searches rows using a one-off client.
func SearchRows(ctx context.Context, apiKey, spreadsheetID, sheet string, where WhereClause, opts *ListOptions) (*ListResult, error) {
	client, err := aliasClient(apiKey, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return client.SearchRows(ctx, sheet, where, opts)
}

// BatchOperations submits a batch using a one-off client.
func BatchOperations(ctx context.Context, apiKey, spreadsheetID, sheet string, operations []Operation) (*BatchResult, error) {
	client, err := aliasClient(apiKey, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return client.BatchOperations(ctx, sheet, operations)
}

// CreateRowsFromFrame bulk-creates rows from a frame using a one-off client.
func CreateRowsFromFrame(ctx context.Context, apiKey, spreadsheetID, sheet string, frame *Frame, chunkSize int) ([]*BatchResult, error) {
	client, err := aliasClient(apiKey, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return client.CreateRowsFromFrame(ctx, sheet, frame, chunkSize)
}
