// Package api provides the TSETMC CDN API client.
//
// REST endpoints (base https://cdn.tsetmc.com/api):
//   - /Instrument/GetInstrumentSearch/{symbol}
//   - /ClosingPrice/GetClosingPriceDailyList/{insCode}/{days}
//
// Upstream rejects requests without a browser-like User-Agent header, so every
// request carries one. Only transport-level failures are retried; a non-200
// status is terminal.
package api
