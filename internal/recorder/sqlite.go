package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"CandleScope/internal/model"
)

// SQLiteRecorder persists analysis results to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad-hoc readers don't block the web handlers.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			symbol            TEXT NOT NULL,
			start_date        TEXT,
			end_date          TEXT,
			source            TEXT,
			bars_total        INTEGER,
			bars_dropped      INTEGER,
			doji              INTEGER,
			hammer            INTEGER,
			bullish_engulfing INTEGER,
			bearish_engulfing INTEGER,
			unlabelled        INTEGER,
			up_pct            REAL,
			down_pct          REAL,
			neutral_pct       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_symbol ON analyses(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis stores one completed analysis row.
func (r *SQLiteRecorder) RecordAnalysis(a *model.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analyses
		(timestamp, symbol, start_date, end_date, source,
		 bars_total, bars_dropped,
		 doji, hammer, bullish_engulfing, bearish_engulfing, unlabelled,
		 up_pct, down_pct, neutral_pct)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), a.Request.Symbol,
		a.Request.Start.Format("2006-01-02"), a.Request.End.Format("2006-01-02"),
		a.Source, len(a.Series.Bars), a.Dropped,
		a.Counts[model.PatternDoji], a.Counts[model.PatternHammer],
		a.Counts[model.PatternBullishEngulfing], a.Counts[model.PatternBearishEngulfing],
		a.Counts[model.PatternNone],
		a.Report.Up, a.Report.Down, a.Report.Neutral,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
