package postgre

import (
	"fmt"
	"strings"
	"testing"

	"event-calendar-webhook/internal/model"
)

func TestInsertRowQueryMatchesLogRow(t *testing.T) {
	cells := len(model.LogRow{}.Values())

	for i := 1; i <= cells; i++ {
		if !strings.Contains(insertRowQuery, fmt.Sprintf("$%d", i)) {
			t.Errorf("insertRowQuery missing placeholder $%d", i)
		}
	}
	if strings.Contains(insertRowQuery, fmt.Sprintf("$%d", cells+1)) {
		t.Errorf("insertRowQuery has more than %d placeholders", cells)
	}

	open := strings.Index(insertRowQuery, "(")
	end := strings.Index(insertRowQuery, ")")
	columns := strings.Split(insertRowQuery[open+1:end], ",")
	if len(columns) != cells {
		t.Errorf("insertRowQuery has %d columns, LogRow has %d cells", len(columns), cells)
	}
}

func TestCreateTableQueryColumns(t *testing.T) {
	for _, col := range []string{"received_at", "text", "email", "title", "event_date", "event_time", "description", "recurrence", "calendar_url", "ics_url"} {
		if !strings.Contains(createTableQuery, col+" ") {
			t.Errorf("createTableQuery missing column %s", col)
		}
	}
}
