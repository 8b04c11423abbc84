// Package history normalizes raw TSETMC daily records into a date-indexed
// table and applies inclusive date-window slicing.
//
// Conventions:
//   - Rows keep the upstream (ascending) order
//   - Row key: Gregorian calendar date (UTC midnight)
//   - One row per trading day; duplicate dates in a payload are a data error
package history
