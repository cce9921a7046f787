package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"CandleScope/internal/model"
)

// Header is the export column set: the date index first, the original
// fields, then the derived classifier columns.
var Header = []string{
	"Date", "Open", "High", "Low", "Close", "Volume",
	"Body", "Upper_Shadow", "Lower_Shadow", "Pattern",
}

const dateLayout = "2006-01-02"

// Filename returns the canonical download name for a symbol's export.
func Filename(symbol string) string {
	return fmt.Sprintf("%s_analyzed_data.csv", symbol)
}

// WriteCSV serializes a classified series with a header row.
func WriteCSV(w io.Writer, bars []model.Bar) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, b := range bars {
		if err := cw.Write([]string{
			b.Time.Format(dateLayout),
			floatStr(b.Open),
			floatStr(b.High),
			floatStr(b.Low),
			floatStr(b.Close),
			floatStr(b.Volume),
			floatStr(b.Body),
			floatStr(b.UpperShadow),
			floatStr(b.LowerShadow),
			string(b.Pattern),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a previously exported series back into bars.
func ReadCSV(r io.Reader) ([]model.Bar, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	bars := make([]model.Bar, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(Header) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+1, len(Header), len(rec))
		}
		t, err := time.Parse(dateLayout, rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse date: %w", i+1, err)
		}
		vals := make([]float64, 8)
		for j := 0; j < 8; j++ {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d col %s: %w", i+1, Header[j+1], err)
			}
			vals[j] = v
		}
		bars = append(bars, model.Bar{
			Time:        t,
			Open:        vals[0],
			High:        vals[1],
			Low:         vals[2],
			Close:       vals[3],
			Volume:      vals[4],
			Body:        vals[5],
			UpperShadow: vals[6],
			LowerShadow: vals[7],
			Pattern:     model.ParsePattern(rec[9]),
		})
	}
	return bars, nil
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
