package recorder

import (
	"testing"
	"time"

	"CandleScope/internal/model"
)

func TestSQLiteRecorder_RecordAnalysis(t *testing.T) {
	r, err := NewSQLiteRecorder(":memory:")
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	a := &model.Analysis{
		Request: model.AnalysisRequest{
			Symbol: "AAPL",
			Start:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		Series: model.PriceSeries{Symbol: "AAPL", Bars: make([]model.Bar, 10)},
		Counts: map[model.PatternLabel]int{
			model.PatternHammer:           2,
			model.PatternBullishEngulfing: 1,
			model.PatternBearishEngulfing: 1,
			model.PatternDoji:             1,
			model.PatternNone:             5,
		},
		Report: model.ProbabilityReport{Up: 30, Down: 10, Neutral: 10},
		Source: "mock",
	}
	if err := r.RecordAnalysis(a); err != nil {
		t.Fatalf("record: %v", err)
	}

	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM analyses WHERE symbol = ?", "AAPL").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	var upPct float64
	var hammer int
	if err := r.db.QueryRow("SELECT up_pct, hammer FROM analyses WHERE symbol = ?", "AAPL").Scan(&upPct, &hammer); err != nil {
		t.Fatalf("read row: %v", err)
	}
	if upPct != 30 || hammer != 2 {
		t.Errorf("stored up_pct=%v hammer=%d, want 30/2", upPct, hammer)
	}
}
