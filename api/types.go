package api

import "github.com/shopspring/decimal"

// InstrumentSearchResponse from GET /Instrument/GetInstrumentSearch/{symbol}
type InstrumentSearchResponse struct {
	InstrumentSearch []InstrumentCandidate `json:"instrumentSearch"`
}

// InstrumentCandidate is one instrument-search result. The code arrives as a
// decimal string.
type InstrumentCandidate struct {
	InsCode   string `json:"insCode"`
	LVal18AFC string `json:"lVal18AFC"` // Short symbol (Persian)
	LVal30    string `json:"lVal30"`    // Full instrument name (Persian)
}

// ClosingPriceDailyResponse from GET /ClosingPrice/GetClosingPriceDailyList/{insCode}/{days}
type ClosingPriceDailyResponse struct {
	ClosingPriceDaily []ClosingPrice `json:"closingPriceDaily"`
}

// ClosingPrice is one trading day as returned by the CDN. Price and value
// fields are decimals; qTotCap routinely exceeds exact float64 range.
type ClosingPrice struct {
	ID      int    `json:"id"`
	InsCode string `json:"insCode"`
	DEven   int    `json:"dEven"` // Trade date, numeric YYYYMMDD
	HEven   int    `json:"hEven"` // Trade time, numeric HHMMSS

	PClosing    decimal.Decimal `json:"pClosing"`    // Closing price
	PDrCotVal   decimal.Decimal `json:"pDrCotVal"`   // Last transaction price
	PriceChange decimal.Decimal `json:"priceChange"` // Change vs previous close
	PriceMin    decimal.Decimal `json:"priceMin"`    // Day low
	PriceMax    decimal.Decimal `json:"priceMax"`    // Day high
	ZTotTran    decimal.Decimal `json:"zTotTran"`    // Number of trades
	QTotTran5J  decimal.Decimal `json:"qTotTran5J"`  // Trade volume
	QTotCap     decimal.Decimal `json:"qTotCap"`     // Trade value

	Last   bool `json:"last"`
	IClose bool `json:"iClose"`
	YClose bool `json:"yClose"`
}
