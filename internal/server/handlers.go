package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"CandleScope/internal/analyzer"
	"CandleScope/internal/chart"
	"CandleScope/internal/export"
	"CandleScope/internal/model"
)

const dateLayout = "2006-01-02"

// parseRequest reads symbol/start/end query params, applying defaults:
// symbol from config, end = today, start = end minus the lookback window.
// A start after end is passed through unchanged; the data source answers
// it with an empty series.
func (s *Server) parseRequest(c *gin.Context) (model.AnalysisRequest, error) {
	req := model.AnalysisRequest{
		Symbol: strings.ToUpper(strings.TrimSpace(c.Query("symbol"))),
	}
	if req.Symbol == "" {
		req.Symbol = s.config.DefaultSymbol
	}

	now := time.Now().UTC().Truncate(24 * time.Hour)
	req.End = now
	if v := c.Query("end"); v != "" {
		end, err := time.Parse(dateLayout, v)
		if err != nil {
			return req, fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", v)
		}
		req.End = end
	}
	req.Start = req.End.AddDate(0, 0, -s.config.LookbackDays)
	if v := c.Query("start"); v != "" {
		start, err := time.Parse(dateLayout, v)
		if err != nil {
			return req, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", v)
		}
		req.Start = start
	}
	return req, nil
}

// run executes the pipeline for one request. Recording is best effort.
func (s *Server) run(req model.AnalysisRequest, record bool) (*model.Analysis, error) {
	a, err := s.analyzer.Analyze(req)
	if err != nil {
		return nil, err
	}
	if record {
		if err := s.recorder.RecordAnalysis(a); err != nil {
			log.Printf("[ERROR] record analysis %s: %v", req.Symbol, err)
		}
	}
	return a, nil
}

func (s *Server) handleIndex(c *gin.Context) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -s.config.LookbackDays)
	c.HTML(http.StatusOK, "index", gin.H{
		"Symbol": s.config.DefaultSymbol,
		"Start":  start.Format(dateLayout),
		"End":    end.Format(dateLayout),
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	req, err := s.parseRequest(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "message", gin.H{"Message": err.Error()})
		return
	}
	a, err := s.run(req, true)
	if err != nil {
		if errors.Is(err, analyzer.ErrNoData) {
			c.HTML(http.StatusOK, "message", gin.H{
				"Message": "No data found. Please try a different stock symbol or date range.",
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "message", gin.H{"Message": err.Error()})
		return
	}

	query := fmt.Sprintf("symbol=%s&start=%s&end=%s",
		req.Symbol, req.Start.Format(dateLayout), req.End.Format(dateLayout))
	c.HTML(http.StatusOK, "result", gin.H{
		"Symbol":     req.Symbol,
		"Start":      req.Start.Format(dateLayout),
		"End":        req.End.Format(dateLayout),
		"Up":         fmt.Sprintf("%.2f%%", a.Report.Up),
		"Down":       fmt.Sprintf("%.2f%%", a.Report.Down),
		"Neutral":    fmt.Sprintf("%.2f%%", a.Report.Neutral),
		"Bars":       len(a.Series.Bars),
		"Dropped":    a.Dropped,
		"Doji":       a.Counts[model.PatternDoji],
		"Hammer":     a.Counts[model.PatternHammer],
		"BullEngulf": a.Counts[model.PatternBullishEngulfing],
		"BearEngulf": a.Counts[model.PatternBearishEngulfing],
		"ChartURL":   "/chart?" + query,
		"ExportURL":  "/export?" + query,
	})
}

func (s *Server) handleAPIAnalyze(c *gin.Context) {
	req, err := s.parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := s.run(req, true)
	if err != nil {
		if errors.Is(err, analyzer.ErrNoData) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no data found for symbol and date range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) handleChart(c *gin.Context) {
	req, err := s.parseRequest(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	a, err := s.run(req, false)
	if err != nil {
		c.String(http.StatusOK, "No data found. Please try a different stock symbol or date range.")
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := chart.Render(c.Writer, a); err != nil {
		log.Printf("[ERROR] render chart %s: %v", req.Symbol, err)
	}
}

func (s *Server) handleExport(c *gin.Context) {
	req, err := s.parseRequest(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	a, err := s.run(req, false)
	if err != nil {
		c.String(http.StatusNotFound, "no data found for symbol and date range")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename(req.Symbol)))
	c.Header("Content-Type", "text/csv")
	if err := export.WriteCSV(c.Writer, a.Series.Bars); err != nil {
		log.Printf("[ERROR] export csv %s: %v", req.Symbol, err)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "source": s.analyzer.Fetcher.Name()})
}
