package sheetson_test

import (
	"context"
	"testing"

	sheetson "github.com/Mr-KAM/go-sheetson"
	"github.com/stretchr/testify/require"
)

// The aliases build a throwaway client per call, so credential validation
// fires before any request is issued.
func TestAliases_CredentialValidation(t *testing.T) {
	ctx := context.Background()

	_, err := sheetson.CreateRow(ctx, "", "spreadsheet", "Cities", map[string]any{"name": "x"})
	require.ErrorIs(t, err, sheetson.ErrMissingAPIKey)

	_, err = sheetson.GetRow(ctx, "key", "", "Cities", 2)
	require.ErrorIs(t, err, sheetson.ErrMissingSpreadsheetID)

	_, err = sheetson.ListRows(ctx, "", "", "Cities", nil)
	require.Error(t, err)

	_, err = sheetson.SearchRows(ctx, "key", "", "Cities", nil, nil)
	require.ErrorIs(t, err, sheetson.ErrMissingSpreadsheetID)

	_, err = sheetson.DeleteRow(ctx, "", "spreadsheet", "Cities", 2)
	require.ErrorIs(t, err, sheetson.ErrMissingAPIKey)

	_, err = sheetson.UpdateRow(ctx, "", "spreadsheet", "Cities", 2, nil)
	require.ErrorIs(t, err, sheetson.ErrMissingAPIKey)

	_, err = sheetson.BatchOperations(ctx, "", "spreadsheet", "Cities", []sheetson.Operation{sheetson.DeleteOp(2)})
	require.ErrorIs(t, err, sheetson.ErrMissingAPIKey)

	_, err = sheetson.CreateRowsFromFrame(ctx, "", "spreadsheet", "Cities", sheetson.NewFrame("name"), 10)
	require.ErrorIs(t, err, sheetson.ErrMissingAPIKey)
}
