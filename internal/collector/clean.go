package collector

import (
	"math"

	"CandleScope/internal/model"
)

// CleanSeries filters out malformed bars before classification and returns
// the surviving bars plus the number dropped. Dropping re-indexes the
// sequence: adjacency for two-bar patterns is computed on the survivors,
// so a bar after a dropped one compares against the nearest surviving
// predecessor.
func CleanSeries(bars []model.Bar) ([]model.Bar, int) {
	clean := make([]model.Bar, 0, len(bars))
	dropped := 0
	for _, b := range bars {
		if wellFormed(b) {
			clean = append(clean, b)
		} else {
			dropped++
		}
	}
	return clean, dropped
}

// wellFormed requires finite, non-negative prices with
// low <= open, close <= high.
func wellFormed(b model.Bar) bool {
	for _, v := range []float64{b.Open, b.High, b.Low, b.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	if b.Low > b.Open || b.Low > b.Close {
		return false
	}
	if b.High < b.Open || b.High < b.Close {
		return false
	}
	return true
}
