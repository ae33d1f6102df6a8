package sheetson

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey        = errors.New("api key is required")
	ErrMissingSpreadsheetID = errors.New("spreadsheet id is required")
	ErrRowNotFound          = errors.New("row not found")
)

// RemoteError is returned for any response with a status code >= 400. The raw
// response body is preserved so callers can inspect the service's error payload.
type RemoteError struct {
	StatusCode int
	Body       []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("sheetson: remote error: status=%d body=%s", e.StatusCode, string(e.Body))
}

// Is lets errors.Is(err, ErrRowNotFound) match a 404 response.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRowNotFound && e.StatusCode == http.StatusNotFound
}

// TransportError is returned when no response was received at all, e.g. on
// connection failures or timeouts.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sheetson: transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
