package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"CandleScope/internal/analyzer"
	"CandleScope/internal/collector"
	"CandleScope/internal/model"
	"CandleScope/internal/recorder"
)

func testServer(fetcher collector.Fetcher) *Server {
	return NewServer(Config{
		Host:          "127.0.0.1",
		Port:          0,
		DefaultSymbol: "AAPL",
		LookbackDays:  90,
	}, analyzer.New(fetcher), recorder.NewNoopRecorder())
}

func engulfingBars() []model.Bar {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	return []model.Bar{
		{Time: base, Open: 10, High: 10.1, Low: 8.9, Close: 9, Volume: 500},
		{Time: base.AddDate(0, 0, 1), Open: 8.5, High: 10.6, Low: 8.4, Close: 10.5, Volume: 700},
	}
}

func TestHandleIndex(t *testing.T) {
	s := testServer(&collector.MockFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `name="symbol"`) {
		t.Error("index page missing the symbol input")
	}
}

func TestHandleAPIAnalyze(t *testing.T) {
	s := testServer(&collector.MockFetcher{Bars: engulfingBars()})
	req := httptest.NewRequest(http.MethodGet, "/api/analyze?symbol=tsla&start=2024-01-01&end=2024-03-01", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", w.Code, w.Body.String())
	}
	var got model.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if got.Request.Symbol != "TSLA" {
		t.Errorf("symbol = %q, want TSLA (uppercased)", got.Request.Symbol)
	}
	if got.Report.Up != 50 {
		t.Errorf("Up = %v, want 50", got.Report.Up)
	}
}

func TestHandleAPIAnalyze_NoData(t *testing.T) {
	s := testServer(&collector.MockFetcher{Bars: []model.Bar{}})
	req := httptest.NewRequest(http.MethodGet, "/api/analyze?symbol=ZZZZ", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleAnalyze_InvertedRangeIsEmptyResult(t *testing.T) {
	// start > end is not a validation error: it passes through to the data
	// source, comes back empty and renders the no-data message.
	s := testServer(&collector.MockFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/analyze?symbol=AAPL&start=2024-03-01&end=2024-01-01", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No data found") {
		t.Errorf("expected no-data message, body: %s", w.Body.String())
	}
}

func TestHandleAPIAnalyze_InvertedRange(t *testing.T) {
	s := testServer(&collector.MockFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/api/analyze?symbol=AAPL&start=2024-03-01&end=2024-01-01", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleAnalyze_BadDate(t *testing.T) {
	s := testServer(&collector.MockFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/analyze?start=01-02-2024", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleAnalyze_FormatsPercentages(t *testing.T) {
	s := testServer(&collector.MockFetcher{Bars: engulfingBars()})
	req := httptest.NewRequest(http.MethodGet, "/analyze?symbol=AAPL&start=2024-01-01&end=2024-03-01", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "50.00%") {
		t.Errorf("expected two-decimal percentage in page, body: %s", w.Body.String())
	}
}

func TestHandleExport(t *testing.T) {
	s := testServer(&collector.MockFetcher{Bars: engulfingBars()})
	req := httptest.NewRequest(http.MethodGet, "/export?symbol=AAPL&start=2024-01-01&end=2024-03-01", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "AAPL_analyzed_data.csv") {
		t.Errorf("content disposition = %q", cd)
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[2], "Bullish_Engulfing") {
		t.Errorf("second bar row missing pattern label: %q", lines[2])
	}
}

func TestHandleHealth(t *testing.T) {
	s := testServer(&collector.MockFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if got["status"] != "ok" {
		t.Errorf("status = %v, want ok", got["status"])
	}
}
