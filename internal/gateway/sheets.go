// README: Booking log gateway appending flat records to a Google Sheet.
package gateway

import (
	"context"
	"sort"
	"time"

	"google.golang.org/api/sheets/v4"
)

const sheetBackoff = 500 * time.Millisecond

type SheetsLogger struct {
	svc           *sheets.Service
	spreadsheetID string
	writeRange    string
	attempts      int
}

func NewSheetsLogger(svc *sheets.Service, spreadsheetID, writeRange string, attempts int) *SheetsLogger {
	return &SheetsLogger{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		writeRange:    writeRange,
		attempts:      attempts,
	}
}

// AppendRecord appends one row to the sheet. Columns follow sorted key order
// so every booking lands with the same layout.
func (l *SheetsLogger) AppendRecord(ctx context.Context, record map[string]string) error {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	row := make([]interface{}, len(keys))
	for i, k := range keys {
		row[i] = record[k]
	}
	values := &sheets.ValueRange{Values: [][]interface{}{row}}

	return retry(ctx, l.attempts, sheetBackoff, func() error {
		_, err := l.svc.Spreadsheets.Values.
			Append(l.spreadsheetID, l.writeRange, values).
			ValueInputOption("RAW").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).
			Do()
		return err
	})
}
