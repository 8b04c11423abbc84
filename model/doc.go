// Package model defines shared data types for TSETMC history retrieval.
//
// Conventions:
//   - Instrument codes: InsCode (int64), 16 or 17 decimal digits
//   - Dates: calendar dates as UTC-midnight time.Time, never timestamps
//   - Monetary values: decimal.Decimal (qTotCap magnitudes overflow float64
//     precision)
package model
