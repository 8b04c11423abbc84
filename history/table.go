package history

import (
	"fmt"
	"time"

	"github.com/pmoradi/tsetmc-data/model"
)

// Table is a date-indexed view of normalized daily price rows.
type Table struct {
	rows  []model.PriceRow
	index map[time.Time]int
}

func newTable(rows []model.PriceRow) (*Table, error) {
	index := make(map[time.Time]int, len(rows))
	for i, row := range rows {
		if _, dup := index[row.Date]; dup {
			return nil, fmt.Errorf("duplicate trading day %s", row.Date.Format("2006-01-02"))
		}
		index[row.Date] = i
	}
	return &Table{rows: rows, index: index}, nil
}

// Rows returns the rows in upstream order. The slice is shared with the table
// and must not be modified.
func (t *Table) Rows() []model.PriceRow { return t.rows }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the row for a calendar date.
func (t *Table) Row(date time.Time) (model.PriceRow, bool) {
	i, ok := t.index[date]
	if !ok {
		return model.PriceRow{}, false
	}
	return t.rows[i], true
}

// MinDate returns the earliest date in the table, or the zero time for an
// empty table.
func (t *Table) MinDate() time.Time {
	if len(t.rows) == 0 {
		return time.Time{}
	}
	return t.rows[0].Date
}

// MaxDate returns the latest date in the table, or the zero time for an empty
// table.
func (t *Table) MaxDate() time.Time {
	if len(t.rows) == 0 {
		return time.Time{}
	}
	return t.rows[len(t.rows)-1].Date
}

// Window bounds a date slice. Both bounds are inclusive; a zero bound is open
// on that side. The legacy tool auto-filled an unset start with the minimum
// date and left an unset end unassigned, which slices the same rows; open
// bounds are the explicit contract here.
type Window struct {
	Start time.Time
	End   time.Time
}

// Slice returns a table holding the rows with Start <= Date <= End.
func (t *Table) Slice(w Window) *Table {
	out := make([]model.PriceRow, 0, len(t.rows))
	for _, row := range t.rows {
		if !w.Start.IsZero() && row.Date.Before(w.Start) {
			continue
		}
		if !w.End.IsZero() && row.Date.After(w.End) {
			continue
		}
		out = append(out, row)
	}

	// Rows came from a table, so dates are already unique.
	sliced, _ := newTable(out)
	return sliced
}
