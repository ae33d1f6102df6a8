package excel

import "errors"

var (
	ErrMissingFilePath  = errors.New("file path is required")
	ErrMissingSheetName = errors.New("sheet name is required")
	ErrSheetNotFound    = errors.New("sheet not found in workbook")
	ErrNoHeaderRow      = errors.New("sheet has no header row")
)
