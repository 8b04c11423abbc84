package api

import (
	"context"
	"fmt"

	"github.com/pmoradi/tsetmc-data/model"
)

// InvalidCodeError reports an instrument code failing the 16/17-digit rule.
// It is returned before any network call is made.
type InvalidCodeError struct {
	Code model.InsCode
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid inscode %d: must be a 16 or 17 digit integer", int64(e.Code))
}

// GetClosingPriceDaily fetches the daily closing-price history for an
// instrument. days == 0 requests all available history; other values are
// passed through to upstream unchanged.
func (c *Client) GetClosingPriceDaily(ctx context.Context, code model.InsCode, days int) ([]ClosingPrice, error) {
	if !code.Valid() {
		return nil, &InvalidCodeError{Code: code}
	}

	path := fmt.Sprintf("/ClosingPrice/GetClosingPriceDailyList/%s/%d", code, days)

	var resp ClosingPriceDailyResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("get closing price daily %s: %w", code, err)
	}

	return resp.ClosingPriceDaily, nil
}
