package model

import "time"

// AnalysisRequest carries the user's input for one analysis run.
type AnalysisRequest struct {
	Symbol string    `json:"symbol"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// ProbabilityReport maps movement directions to raw label frequencies,
// expressed as percentages in [0,100]. The three values need not sum to
// 100: bars labelled None count toward the total but no direction.
type ProbabilityReport struct {
	Up      float64 `json:"up"`
	Down    float64 `json:"down"`
	Neutral float64 `json:"neutral"`
}

// Analysis is the full result of one request: the classified series,
// per-label counts and the derived probability report.
type Analysis struct {
	Request     AnalysisRequest      `json:"request"`
	Series      PriceSeries          `json:"series"`
	Counts      map[PatternLabel]int `json:"counts"`
	Dropped     int                  `json:"dropped"`
	Report      ProbabilityReport    `json:"report"`
	Source      string               `json:"source"`
	GeneratedAt time.Time            `json:"generated_at"`
}
