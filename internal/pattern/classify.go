package pattern

import (
	"math"

	"CandleScope/internal/model"
)

// Doji/Hammer geometry thresholds, relative to the bar's full range.
const (
	dojiBodyMax   = 0.1
	hammerBodyMax = 0.3
)

// Classify labels every bar in the series with its candlestick pattern and
// fills in the derived body/shadow fields. The input slice is not modified;
// the returned slice has the same length and order.
//
// Rules are evaluated per bar in a fixed order — Doji, Hammer,
// Bullish_Engulfing, Bearish_Engulfing — and a later match overwrites an
// earlier one. The order is a contract: conditions are not mutually
// exclusive and the last match decides the label.
func Classify(bars []model.Bar) []model.Bar {
	out := make([]model.Bar, len(bars))
	copy(out, bars)

	for i := range out {
		b := &out[i]
		b.Body = math.Abs(b.Close - b.Open)
		b.UpperShadow = b.High - math.Max(b.Open, b.Close)
		b.LowerShadow = math.Min(b.Open, b.Close) - b.Low
		b.Pattern = model.PatternNone

		if isDoji(*b) {
			b.Pattern = model.PatternDoji
		}
		if isHammer(*b) {
			b.Pattern = model.PatternHammer
		}
		// Two-bar rules need a predecessor; the first bar keeps whatever
		// single-bar label it earned.
		if i > 0 {
			prev := out[i-1]
			if isBullishEngulfing(prev, *b) {
				b.Pattern = model.PatternBullishEngulfing
			}
			if isBearishEngulfing(prev, *b) {
				b.Pattern = model.PatternBearishEngulfing
			}
		}
	}
	return out
}

// isDoji: tiny body with a shadow on both sides. When high == low the
// threshold degenerates to body <= 0 but both shadow clauses are false,
// so a flat bar is never a Doji.
func isDoji(b model.Bar) bool {
	return b.Body <= dojiBodyMax*b.Range() && b.UpperShadow > 0 && b.LowerShadow > 0
}

// isHammer: small body near the top of the range with a long lower shadow.
func isHammer(b model.Bar) bool {
	return b.Body <= hammerBodyMax*b.Range() &&
		b.LowerShadow > 2*b.Body &&
		b.UpperShadow < b.Body
}

// isBullishEngulfing: bullish bar whose body spans the previous bearish body.
func isBullishEngulfing(prev, cur model.Bar) bool {
	return cur.Bullish() && prev.Bearish() &&
		cur.Close > prev.Open && cur.Open < prev.Close
}

// isBearishEngulfing: mirror of the bullish case.
func isBearishEngulfing(prev, cur model.Bar) bool {
	return cur.Bearish() && prev.Bullish() &&
		cur.Close < prev.Open && cur.Open > prev.Close
}
