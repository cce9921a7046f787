package watch

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"CandleScope/internal/analyzer"
	"CandleScope/internal/model"
	"CandleScope/internal/recorder"
)

// Watcher re-analyzes a fixed set of symbols on a cron schedule and records
// the results, building up a pattern-frequency history in the database.
type Watcher struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Recorder recorder.Recorder
	Symbols  []string
	Lookback int // days
}

// NewWatcher creates a Watcher over the given symbols.
func NewWatcher(a *analyzer.Analyzer, rec recorder.Recorder, symbols []string, lookbackDays int) *Watcher {
	return &Watcher{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: a,
		Recorder: rec,
		Symbols:  symbols,
		Lookback: lookbackDays,
	}
}

// Register schedules the watch task.
func (w *Watcher) Register(cronExpr string) error {
	if _, err := w.Cron.AddFunc(cronExpr, w.runAll); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (w *Watcher) Start() {
	w.Cron.Start()
	log.Printf("[INFO] watcher started for %d symbols", len(w.Symbols))
}

// Stop stops the cron scheduler gracefully.
func (w *Watcher) Stop() {
	w.Cron.Stop()
	log.Println("[INFO] watcher stopped")
}

// RunNow executes the watch task immediately (manual trigger).
func (w *Watcher) RunNow() {
	w.runAll()
}

func (w *Watcher) runAll() {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -w.Lookback)

	for _, symbol := range w.Symbols {
		a, err := w.Analyzer.Analyze(model.AnalysisRequest{Symbol: symbol, Start: start, End: end})
		if err != nil {
			log.Printf("[WARN] watch %s: %v", symbol, err)
			continue
		}
		if err := w.Recorder.RecordAnalysis(a); err != nil {
			log.Printf("[ERROR] watch record %s: %v", symbol, err)
			continue
		}
		log.Printf("[INFO] watch %s: %d bars, up=%.2f%% down=%.2f%% neutral=%.2f%%",
			symbol, len(a.Series.Bars), a.Report.Up, a.Report.Down, a.Report.Neutral)
	}
}
