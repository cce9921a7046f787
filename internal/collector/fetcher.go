package collector

import (
	"time"

	"CandleScope/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyBars returns daily OHLCV bars for symbol between start and
	// end (inclusive calendar bounds), ordered by time ascending. A range
	// with no trading data yields an empty slice, not an error.
	FetchDailyBars(symbol string, start, end time.Time) ([]model.Bar, error)
	Name() string
}
