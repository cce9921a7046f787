package model

import "time"

// Bar represents a single daily candlestick bar. Body, UpperShadow and
// LowerShadow are derived by the classifier and zero until then.
type Bar struct {
	Time        time.Time    `json:"time"`
	Open        float64      `json:"open"`
	High        float64      `json:"high"`
	Low         float64      `json:"low"`
	Close       float64      `json:"close"`
	Volume      float64      `json:"volume"`
	Body        float64      `json:"body"`
	UpperShadow float64      `json:"upper_shadow"`
	LowerShadow float64      `json:"lower_shadow"`
	Pattern     PatternLabel `json:"pattern"`
}

// Range is the full high-low extent of the bar.
func (b Bar) Range() float64 { return b.High - b.Low }

// Bullish reports whether the bar closed above its open.
func (b Bar) Bullish() bool { return b.Close > b.Open }

// Bearish reports whether the bar closed below its open.
func (b Bar) Bearish() bool { return b.Close < b.Open }

// PriceSeries holds the ordered daily bars fetched for one symbol.
type PriceSeries struct {
	Symbol    string    `json:"symbol"`
	Bars      []Bar     `json:"bars"`
	FetchedAt time.Time `json:"fetched_at"`
}
