package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/pmoradi/tsetmc-data/model"
)

// NotFoundError reports a symbol for which no search candidate matched.
type NotFoundError struct {
	Symbol string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("inscode not found for symbol %q", e.Symbol)
}

// SearchInstruments fetches the raw candidate list for a symbol. Callers that
// need a disambiguation policy other than ResolveSymbol's length heuristic can
// pick from this list directly.
func (c *Client) SearchInstruments(ctx context.Context, symbol string) ([]InstrumentCandidate, error) {
	if symbol == "" {
		return nil, errors.New("symbol must not be empty")
	}

	var resp InstrumentSearchResponse
	if err := c.get(ctx, "/Instrument/GetInstrumentSearch/"+url.PathEscape(symbol), &resp); err != nil {
		return nil, fmt.Errorf("search instruments %q: %w", symbol, err)
	}

	return resp.InstrumentSearch, nil
}

// ResolveSymbol resolves a symbol to an instrument code using the legacy
// heuristic: the first candidate whose lVal18AFC has the same character length
// as the symbol wins. Symbols are Persian text, so length is counted in runes.
func (c *Client) ResolveSymbol(ctx context.Context, symbol string) (model.InsCode, error) {
	candidates, err := c.SearchInstruments(ctx, symbol)
	if err != nil {
		return 0, err
	}

	want := utf8.RuneCountInString(symbol)
	for _, cand := range candidates {
		if utf8.RuneCountInString(cand.LVal18AFC) != want {
			continue
		}
		code, err := strconv.ParseInt(cand.InsCode, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse insCode %q for symbol %q: %w", cand.InsCode, symbol, err)
		}
		return model.InsCode(code), nil
	}

	return 0, &NotFoundError{Symbol: symbol}
}
