// Package tsetmc retrieves historical daily closing prices from the Tehran
// Stock Exchange market-data service (tsetmc.com).
//
// The pipeline is symbol resolution (when no instrument code is given),
// history fetch with bounded retries, normalization into a date-indexed table,
// and an inclusive date-window slice. All failures surface as typed errors;
// nothing is swallowed.
package tsetmc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pmoradi/tsetmc-data/api"
	"github.com/pmoradi/tsetmc-data/history"
	"github.com/pmoradi/tsetmc-data/model"
)

// ErrNoIdentifier is returned when a Request carries neither a symbol nor an
// instrument code. Callers check it with errors.Is.
var ErrNoIdentifier = errors.New("tsetmc: no symbol or inscode provided")

// dateFormat is the layout for StartDate/EndDate strings.
const dateFormat = "2006-01-02"

// Request describes one history lookup. Exactly one of Symbol or InsCode is
// expected; when both are set InsCode takes precedence.
type Request struct {
	Symbol  string        // Market ticker, resolved via instrument search
	InsCode model.InsCode // Instrument code, 16 or 17 digits

	Days int // 0 = all available history; other values pass through upstream

	StartDate string // "YYYY-MM-DD", optional, inclusive
	EndDate   string // "YYYY-MM-DD", optional, inclusive
}

// StockHistory fetches, normalizes and filters the daily price history for
// the instrument identified by req.
func StockHistory(ctx context.Context, client *api.Client, req Request) (*history.Table, error) {
	window, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	code := req.InsCode
	if code == 0 {
		if req.Symbol == "" {
			return nil, ErrNoIdentifier
		}
		code, err = client.ResolveSymbol(ctx, req.Symbol)
		if err != nil {
			return nil, err
		}
	}

	records, err := client.GetClosingPriceDaily(ctx, code, req.Days)
	if err != nil {
		return nil, err
	}

	table, err := history.Normalize(records)
	if err != nil {
		return nil, err
	}

	return table.Slice(window), nil
}

func parseWindow(start, end string) (history.Window, error) {
	var w history.Window

	if start != "" {
		t, err := time.Parse(dateFormat, start)
		if err != nil {
			return w, fmt.Errorf("parse start_date %q: %w", start, err)
		}
		w.Start = t
	}

	if end != "" {
		t, err := time.Parse(dateFormat, end)
		if err != nil {
			return w, fmt.Errorf("parse end_date %q: %w", end, err)
		}
		w.End = t
	}

	return w, nil
}
