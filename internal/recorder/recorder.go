package recorder

import "CandleScope/internal/model"

// Recorder persists completed analyses for later inspection.
type Recorder interface {
	RecordAnalysis(a *model.Analysis) error
	Close() error
}
