package api

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"

	"github.com/pmoradi/tsetmc-data/model"
)

// ParseDEven parses a numeric YYYYMMDD trade date into a UTC calendar date.
func ParseDEven(dEven int) (time.Time, error) {
	year := dEven / 10000
	month := dEven / 100 % 100
	day := dEven % 100

	if year < 1000 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid dEven %d", dEven)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (e.g. Feb 30 -> Mar 2); reject those.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("invalid dEven %d", dEven)
	}

	return t, nil
}

// ToModel converts a raw daily record to a normalized PriceRow: the trade date
// becomes a calendar date, the Jalali equivalent is derived once, and the
// ancillary fields are dropped.
func (p *ClosingPrice) ToModel() (model.PriceRow, error) {
	date, err := ParseDEven(p.DEven)
	if err != nil {
		return model.PriceRow{}, err
	}

	return model.PriceRow{
		Date:         date,
		DateShamsi:   ptime.New(date),
		Close:        p.PClosing,
		ValueOfTrade: p.QTotCap,
	}, nil
}
