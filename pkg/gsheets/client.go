package gsheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	valueInputRaw  = "RAW"
	insertDataRows = "INSERT_ROWS"
)

// Scope grants read/write access to spreadsheets.
const Scope = sheets.SpreadsheetsScope

// Client wraps the Google Sheets API service.
type Client struct {
	service *sheets.Service
}

// NewClient creates a Sheets client. Callers supply credentials via opts.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc}, nil
}

// AppendRow appends one row after the last non-empty row of sheetName.
// Values are written as-is so user text starting with "=" is never evaluated.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, sheetName string, values []any) (*AppendResult, error) {
	if spreadsheetID == "" {
		return nil, ErrMissingSpreadsheetID
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{values}}
	resp, err := c.service.Spreadsheets.Values.
		Append(spreadsheetID, A1Range(sheetName), vr).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertDataRows).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to append row: %w", err)
	}

	out := &AppendResult{}
	if resp.Updates != nil {
		out.UpdatedRange = resp.Updates.UpdatedRange
		out.UpdatedRows = resp.Updates.UpdatedRows
	}
	return out, nil
}

// A1Range quotes a sheet name for use as an A1 range.
func A1Range(sheetName string) string {
	if sheetName == "" {
		return "A1"
	}
	return "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
}
