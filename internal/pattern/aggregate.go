package pattern

import "CandleScope/internal/model"

// Count tallies every pattern label across the classified series,
// None included.
func Count(bars []model.Bar) map[model.PatternLabel]int {
	counts := make(map[model.PatternLabel]int, len(model.AllPatterns))
	for _, b := range bars {
		counts[b.Pattern]++
	}
	return counts
}

// Aggregate turns label counts into a movement probability report:
// Hammer and Bullish_Engulfing count as Up, Bearish_Engulfing as Down,
// Doji as Neutral. Unlabelled bars stay in the denominator, so the three
// percentages may sum to less than 100. An empty series yields the
// defined zero state {0, 0, 0}.
func Aggregate(counts map[model.PatternLabel]int) model.ProbabilityReport {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return model.ProbabilityReport{}
	}
	t := float64(total)
	return model.ProbabilityReport{
		Up:      100 * float64(counts[model.PatternBullishEngulfing]+counts[model.PatternHammer]) / t,
		Down:    100 * float64(counts[model.PatternBearishEngulfing]) / t,
		Neutral: 100 * float64(counts[model.PatternDoji]) / t,
	}
}
