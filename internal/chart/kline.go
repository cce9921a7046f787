package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"CandleScope/internal/model"
)

// Candlestick builds a kline chart page for a classified series.
func Candlestick(a *model.Analysis) *charts.Kline {
	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("%s Candlestick Chart", a.Request.Symbol),
			Width:     "1100px",
			Height:    "520px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Candlestick Chart", a.Request.Symbol),
			Subtitle: fmt.Sprintf("%s to %s",
				a.Request.Start.Format("2006-01-02"), a.Request.End.Format("2006-01-02")),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date", SplitNumber: 20}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price", Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	)

	bars := a.Series.Bars
	x := make([]string, len(bars))
	y := make([]opts.KlineData, len(bars))
	for i, b := range bars {
		x[i] = b.Time.Format("2006-01-02")
		// echarts kline value order: open, close, low, high
		y[i] = opts.KlineData{Value: [4]float64{b.Open, b.Close, b.Low, b.High}}
	}
	kline.SetXAxis(x).AddSeries(a.Request.Symbol, y)
	return kline
}

// Render writes the chart as a standalone HTML page.
func Render(w io.Writer, a *model.Analysis) error {
	return Candlestick(a).Render(w)
}
