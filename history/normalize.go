package history

import (
	"fmt"

	"github.com/pmoradi/tsetmc-data/api"
	"github.com/pmoradi/tsetmc-data/model"
)

// Normalize converts raw daily records into a date-indexed table, preserving
// upstream order. Each record has its trade date parsed, the Jalali equivalent
// derived, and the ancillary fields dropped.
func Normalize(records []api.ClosingPrice) (*Table, error) {
	rows := make([]model.PriceRow, 0, len(records))
	for i := range records {
		row, err := records[i].ToModel()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return newTable(rows)
}
