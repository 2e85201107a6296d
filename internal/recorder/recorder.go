package recorder

import "WaveScope/internal/model"

// Recorder persists analysis runs for later inspection.
type Recorder interface {
	RecordAnalysis(rep *model.AnalysisReport) error
	RecordBatch(results []model.PortfolioResult) error
	Close() error
}
