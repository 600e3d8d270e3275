package gsheets

import "errors"

var ErrMissingSpreadsheetID = errors.New("gsheets: spreadsheet id is required")

// AppendResult reports where an appended row landed.
type AppendResult struct {
	UpdatedRange string
	UpdatedRows  int64
}
