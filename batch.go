package sheetson

import (
	"context"
	"fmt"
	"net/http"
)

// DefaultChunkSize is the number of rows sent per batch call by
// CreateRowsFromFrame when no chunk size is given.
const DefaultChunkSize = 100

// OperationType identifies a batch operation variant.
type OperationType string

const (
	OperationCreate OperationType = "create"
	OperationUpdate OperationType = "update"
	OperationDelete OperationType = "delete"
)

// Operation is one entry of a batch request: a create with data, an update
// with row number and data, or a delete with row number.
type Operation struct {
	Type      OperationType  `json:"operation"`
	RowNumber int            `json:"row_number,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// CreateOp builds a create operation.
func CreateOp(data map[string]any) Operation {
	return Operation{Type: OperationCreate, Data: data}
}

// UpdateOp builds an update operation for the given row number.
func UpdateOp(rowNumber int, data map[string]any) Operation {
	return Operation{Type: OperationUpdate, RowNumber: rowNumber, Data: data}
}

// DeleteOp builds a delete operation for the given row number.
func DeleteOp(rowNumber int) Operation {
	return Operation{Type: OperationDelete, RowNumber: rowNumber}
}

func (op Operation) validate(i int) error {
	switch op.Type {
	case OperationCreate:
		if op.Data == nil {
			return fmt.Errorf("sheetson: operation %d: create requires data", i)
		}
	case OperationUpdate:
		if err := validateRowNumber(op.RowNumber); err != nil {
			return fmt.Errorf("sheetson: operation %d: %w", i, err)
		}
		if op.Data == nil {
			return fmt.Errorf("sheetson: operation %d: update requires data", i)
		}
	case OperationDelete:
		if err := validateRowNumber(op.RowNumber); err != nil {
			return fmt.Errorf("sheetson: operation %d: %w", i, err)
		}
	default:
		return fmt.Errorf("sheetson: operation %d: unknown operation type %q", i, op.Type)
	}
	return nil
}

// OperationResult is the per-operation outcome reported by the service.
type OperationResult struct {
	Operation OperationType  `json:"operation"`
	RowNumber int            `json:"row_number,omitempty"`
	Success   bool           `json:"success"`
	Result    map[string]any `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// BatchResult summarizes one batch call. A partially failed batch is not an
// error: the failing entries are reported here and the rest still apply.
type BatchResult struct {
	Results              []OperationResult `json:"batch_results"`
	TotalOperations      int               `json:"total_operations"`
	SuccessfulOperations int               `json:"successful_operations"`
	FailedOperations     int               `json:"failed_operations"`
}

// BatchOperations submits all operations in a single request and returns
// whatever the service reports. Partial failures are surfaced in the result,
// never retried.
func (c *Client) BatchOperations(ctx context.Context, sheet string, operations []Operation) (*BatchResult, error) {
	if len(operations) == 0 {
		return nil, fmt.Errorf("sheetson: at least one operation is required")
	}
	for i, op := range operations {
		if err := op.validate(i); err != nil {
			return nil, err
		}
	}

	body := map[string]any{"operations": operations}
	var result BatchResult
	if err := c.do(ctx, http.MethodPost, sheetPath(sheet)+"/batch", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateRowsFromFrame creates one row per frame record, splitting the frame
// into consecutive chunks of at most chunkSize rows (DefaultChunkSize when
// chunkSize <= 0) and issuing one batch create call per chunk, in order.
//
// Chunking is fail-fast with no rollback: when a chunk fails, the results of
// the chunks already committed are returned together with the error, and the
// remaining chunks are never attempted.
func (c *Client) CreateRowsFromFrame(ctx context.Context, sheet string, frame *Frame, chunkSize int) ([]*BatchResult, error) {
	if frame == nil {
		return nil, fmt.Errorf("sheetson: frame is required")
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	records := frame.Records()
	results := make([]*BatchResult, 0, (len(records)+chunkSize-1)/chunkSize)

	for start := 0; start < len(records); start += chunkSize {
		end := start + chunkSize
		if end > len(records) {
			end = len(records)
		}

		operations := make([]Operation, 0, end-start)
		for _, record := range records[start:end] {
			operations = append(operations, CreateOp(record))
		}

		result, err := c.BatchOperations(ctx, sheet, operations)
		if err != nil {
			return results, fmt.Errorf("sheetson: batch create for records %d-%d: %w", start, end-1, err)
		}
		results = append(results, result)
	}

	return results, nil
}
