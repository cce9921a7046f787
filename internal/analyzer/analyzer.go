package analyzer

import (
	"errors"
	"fmt"
	"log"
	"time"

	"CandleScope/internal/collector"
	"CandleScope/internal/model"
	"CandleScope/internal/pattern"
)

// ErrNoData is returned when a request yields no usable bars. A fetch
// failure, unknown symbol, inverted date range and an all-malformed series
// are deliberately indistinguishable at this level: the user sees one
// "no data found" outcome.
var ErrNoData = errors.New("no data found for symbol and date range")

// Analyzer runs the synchronous fetch → clean → classify → aggregate
// pipeline. It holds no per-request state.
type Analyzer struct {
	Fetcher collector.Fetcher
}

// New creates an Analyzer on top of the given data source.
func New(fetcher collector.Fetcher) *Analyzer {
	return &Analyzer{Fetcher: fetcher}
}

// Analyze executes one request end to end.
func (a *Analyzer) Analyze(req model.AnalysisRequest) (*model.Analysis, error) {
	bars, err := a.Fetcher.FetchDailyBars(req.Symbol, req.Start, req.End)
	if err != nil {
		log.Printf("[WARN] fetch %s from %s: %v", req.Symbol, a.Fetcher.Name(), err)
		return nil, fmt.Errorf("%w: %s", ErrNoData, req.Symbol)
	}

	clean, dropped := collector.CleanSeries(bars)
	if dropped > 0 {
		log.Printf("[INFO] %s: dropped %d malformed bars of %d", req.Symbol, dropped, len(bars))
	}
	if len(clean) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoData, req.Symbol)
	}

	classified := pattern.Classify(clean)
	counts := pattern.Count(classified)

	return &model.Analysis{
		Request: req,
		Series: model.PriceSeries{
			Symbol:    req.Symbol,
			Bars:      classified,
			FetchedAt: time.Now(),
		},
		Counts:      counts,
		Dropped:     dropped,
		Report:      pattern.Aggregate(counts),
		Source:      a.Fetcher.Name(),
		GeneratedAt: time.Now(),
	}, nil
}
