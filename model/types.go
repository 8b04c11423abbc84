package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	ptime "github.com/yaa110/go-persian-calendar"
)

// InsCode is the numeric identifier TSETMC assigns to a tradable instrument.
// Valid codes have exactly 16 or 17 decimal digits.
type InsCode int64

// Valid reports whether the code satisfies the 16/17-digit rule.
func (c InsCode) Valid() bool {
	if c <= 0 {
		return false
	}
	n := len(strconv.FormatInt(int64(c), 10))
	return n == 16 || n == 17
}

// String returns the decimal representation used in request URLs.
func (c InsCode) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// PriceRow is one normalized trading day.
type PriceRow struct {
	Date         time.Time       // Gregorian trading day (UTC midnight, row key)
	DateShamsi   ptime.Time      // Jalali equivalent, derived once from Date
	Close        decimal.Decimal // Closing price
	ValueOfTrade decimal.Decimal // Aggregate traded value (qTotCap)
}
