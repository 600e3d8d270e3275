package sheets

import (
	"context"

	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/pkg/gsheets"
	"event-calendar-webhook/pkg/log"
)

// DefaultSheetName is the tab a Google Form writes its responses to.
const DefaultSheetName = "Form Responses 1"

// Client is the subset of gsheets.Client used by the sink.
type Client interface {
	AppendRow(ctx context.Context, spreadsheetID, sheetName string, values []any) (*gsheets.AppendResult, error)
}

type implLogSink struct {
	client        Client
	spreadsheetID string
	sheetName     string
	l             log.Logger
}

// New creates a Google Sheets backed LogSink.
func New(client Client, spreadsheetID, sheetName string, l log.Logger) repository.LogSink {
	if client == nil {
		panic("event/repository/sheets: client is required")
	}
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	return &implLogSink{client: client, spreadsheetID: spreadsheetID, sheetName: sheetName, l: l}
}
