package pattern

import (
	"math"
	"testing"
	"time"

	"CandleScope/internal/model"
)

func bar(open, high, low, close float64) model.Bar {
	return model.Bar{Time: time.Now(), Open: open, High: high, Low: low, Close: close}
}

func TestClassify_SingleBarLabels(t *testing.T) {
	tests := []struct {
		name string
		bar  model.Bar
		want model.PatternLabel
	}{
		{
			// body=0.02, range=0.10, upper=0.03, lower=0.07:
			// fails Doji (0.02 > 0.01) and Hammer (upper >= body)
			name: "small bar matching no rule",
			bar:  bar(10, 10.05, 9.95, 10.02),
			want: model.PatternNone,
		},
		{
			name: "doji with shadows on both sides",
			bar:  bar(10.00, 10.06, 9.94, 10.01),
			want: model.PatternDoji,
		},
		{
			name: "hammer with long lower shadow",
			bar:  bar(10.00, 10.06, 9.70, 10.05),
			want: model.PatternHammer,
		},
		{
			// open == close == high == low: thresholds collapse to zero and
			// both shadow clauses are false, so nothing matches.
			name: "flat bar falls through to none",
			bar:  bar(10, 10, 10, 10),
			want: model.PatternNone,
		},
		{
			name: "full-body bullish bar is none",
			bar:  bar(10, 11, 10, 11),
			want: model.PatternNone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]model.Bar{tt.bar})
			if len(got) != 1 {
				t.Fatalf("expected 1 bar, got %d", len(got))
			}
			if got[0].Pattern != tt.want {
				t.Errorf("pattern = %v, want %v", got[0].Pattern, tt.want)
			}
		})
	}
}

func TestClassify_DerivedQuantities(t *testing.T) {
	got := Classify([]model.Bar{bar(10, 10.05, 9.95, 10.02)})[0]
	// The subtractions carry float64 rounding, so compare with a tolerance.
	if math.Abs(got.Body-0.02) > 1e-9 {
		t.Errorf("body = %v, want 0.02", got.Body)
	}
	if math.Abs(got.UpperShadow-0.03) > 1e-9 {
		t.Errorf("upper shadow = %v, want 0.03", got.UpperShadow)
	}
	if math.Abs(got.LowerShadow-0.05) > 1e-9 {
		t.Errorf("lower shadow = %v, want 0.05", got.LowerShadow)
	}
}

func TestClassify_BullishEngulfing(t *testing.T) {
	bars := []model.Bar{
		bar(10, 10.1, 8.9, 9),     // bearish
		bar(8.5, 10.6, 8.4, 10.5), // bullish, body spans previous body
	}
	got := Classify(bars)
	if got[1].Pattern != model.PatternBullishEngulfing {
		t.Errorf("bar1 pattern = %v, want %v", got[1].Pattern, model.PatternBullishEngulfing)
	}
}

func TestClassify_BearishEngulfing(t *testing.T) {
	bars := []model.Bar{
		bar(9, 10.6, 8.9, 10.5),   // bullish
		bar(10.7, 10.8, 8.4, 8.5), // bearish, body spans previous body
	}
	got := Classify(bars)
	if got[1].Pattern != model.PatternBearishEngulfing {
		t.Errorf("bar1 pattern = %v, want %v", got[1].Pattern, model.PatternBearishEngulfing)
	}
}

func TestClassify_FirstBarNeverEngulfing(t *testing.T) {
	// Same geometry that engulfs when a predecessor exists.
	got := Classify([]model.Bar{bar(8.5, 10.6, 8.4, 10.5)})
	if p := got[0].Pattern; p == model.PatternBullishEngulfing || p == model.PatternBearishEngulfing {
		t.Errorf("single bar labelled %v, engulfing requires a predecessor", p)
	}
}

func TestClassify_LaterRuleOverwrites(t *testing.T) {
	// bar1 in isolation is a Doji (body 0.03 <= 0.1*range 0.3, shadows on
	// both sides), but against bar0 it is also a bearish engulfing, and the
	// engulfing rule runs later.
	bars := []model.Bar{
		bar(10.01, 10.03, 10.00, 10.02),
		bar(10.03, 10.20, 9.90, 10.00),
	}
	got := Classify(bars)
	if got[1].Pattern != model.PatternBearishEngulfing {
		t.Errorf("bar1 pattern = %v, want %v (last matching rule wins)",
			got[1].Pattern, model.PatternBearishEngulfing)
	}

	// Doji geometry that also satisfies Hammer: Hammer runs later.
	hammerDoji := bar(10.00, 10.015, 9.90, 10.01)
	got2 := Classify([]model.Bar{hammerDoji})
	if got2[0].Pattern != model.PatternHammer {
		t.Errorf("pattern = %v, want %v (hammer overwrites doji)",
			got2[0].Pattern, model.PatternHammer)
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	in := []model.Bar{bar(10.00, 10.06, 9.94, 10.01)}
	_ = Classify(in)
	if in[0].Pattern != "" || in[0].Body != 0 {
		t.Errorf("input slice was mutated: %+v", in[0])
	}
}

func TestClassify_EmptySeries(t *testing.T) {
	if got := Classify(nil); len(got) != 0 {
		t.Errorf("expected empty output, got %d bars", len(got))
	}
}
