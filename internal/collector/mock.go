package collector

import (
	"time"

	"CandleScope/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.Bar
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, start, end time.Time) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateBars(100.0, start, end), nil
}

// GenerateBars builds a deterministic daily series between start and end,
// weekends included, drifting around basePrice.
func GenerateBars(basePrice float64, start, end time.Time) []model.Bar {
	var bars []model.Bar
	for d, i := start, 0; !d.After(end); d, i = d.AddDate(0, 0, 1), i+1 {
		p := basePrice * (1 + float64(i%21-10)*0.002)
		bars = append(bars, model.Bar{
			Time:    d,
			Open:    p * 0.999,
			High:    p * 1.005,
			Low:     p * 0.995,
			Close:   p,
			Volume:  1000000,
			Pattern: model.PatternNone,
		})
	}
	return bars
}
