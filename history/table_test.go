package history

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// tenDays returns a table for 2021-01-01 through 2021-01-10.
func tenDays(t *testing.T) *Table {
	t.Helper()
	table, err := Normalize(dailyRecords(
		20210101, 20210102, 20210103, 20210104, 20210105,
		20210106, 20210107, 20210108, 20210109, 20210110,
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return table
}

// TestSlice tests inclusive date-window filtering.
func TestSlice(t *testing.T) {
	t.Run("both bounds inclusive", func(t *testing.T) {
		got := tenDays(t).Slice(Window{
			Start: day(2021, time.January, 3),
			End:   day(2021, time.January, 5),
		})

		if got.Len() != 3 {
			t.Fatalf("Len() = %d, want 3", got.Len())
		}
		for i, wantDay := range []int{3, 4, 5} {
			if got.Rows()[i].Date.Day() != wantDay {
				t.Errorf("rows[%d].Date.Day() = %d, want %d", i, got.Rows()[i].Date.Day(), wantDay)
			}
		}
	})

	t.Run("unset end is open", func(t *testing.T) {
		got := tenDays(t).Slice(Window{Start: day(2021, time.January, 8)})
		if got.Len() != 3 {
			t.Errorf("Len() = %d, want 3", got.Len())
		}
	})

	t.Run("unset start is open", func(t *testing.T) {
		got := tenDays(t).Slice(Window{End: day(2021, time.January, 2)})
		if got.Len() != 2 {
			t.Errorf("Len() = %d, want 2", got.Len())
		}
	})

	t.Run("empty window keeps everything", func(t *testing.T) {
		got := tenDays(t).Slice(Window{})
		if got.Len() != 10 {
			t.Errorf("Len() = %d, want 10", got.Len())
		}
	})

	t.Run("disjoint window yields empty table", func(t *testing.T) {
		got := tenDays(t).Slice(Window{
			Start: day(2022, time.January, 1),
			End:   day(2022, time.December, 31),
		})
		if got.Len() != 0 {
			t.Errorf("Len() = %d, want 0", got.Len())
		}
	})

	t.Run("sliced table keeps its index", func(t *testing.T) {
		got := tenDays(t).Slice(Window{
			Start: day(2021, time.January, 3),
			End:   day(2021, time.January, 5),
		})

		if _, ok := got.Row(day(2021, time.January, 4)); !ok {
			t.Error("Row() did not find a date inside the slice")
		}
		if _, ok := got.Row(day(2021, time.January, 6)); ok {
			t.Error("Row() found a date outside the slice")
		}
	})
}

// TestMinMaxDate tests the table bounds.
func TestMinMaxDate(t *testing.T) {
	table := tenDays(t)

	if got := table.MinDate(); !got.Equal(day(2021, time.January, 1)) {
		t.Errorf("MinDate() = %v, want 2021-01-01", got)
	}
	if got := table.MaxDate(); !got.Equal(day(2021, time.January, 10)) {
		t.Errorf("MaxDate() = %v, want 2021-01-10", got)
	}

	t.Run("empty table", func(t *testing.T) {
		empty, err := Normalize(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !empty.MinDate().IsZero() {
			t.Error("MinDate() of empty table should be zero")
		}
		if !empty.MaxDate().IsZero() {
			t.Error("MaxDate() of empty table should be zero")
		}
	})
}
