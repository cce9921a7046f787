package model

// PatternLabel identifies the candlestick pattern assigned to a bar.
// The string values double as the export format.
type PatternLabel string

const (
	PatternNone             PatternLabel = "None"
	PatternDoji             PatternLabel = "Doji"
	PatternHammer           PatternLabel = "Hammer"
	PatternBullishEngulfing PatternLabel = "Bullish_Engulfing"
	PatternBearishEngulfing PatternLabel = "Bearish_Engulfing"
)

// AllPatterns lists every label, None included, in rule order.
var AllPatterns = []PatternLabel{
	PatternNone,
	PatternDoji,
	PatternHammer,
	PatternBullishEngulfing,
	PatternBearishEngulfing,
}

// ParsePattern maps an exported string back to a label. Unknown strings
// map to PatternNone.
func ParsePattern(s string) PatternLabel {
	switch PatternLabel(s) {
	case PatternDoji, PatternHammer, PatternBullishEngulfing, PatternBearishEngulfing:
		return PatternLabel(s)
	default:
		return PatternNone
	}
}
