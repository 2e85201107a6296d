package recorder

import "WaveScope/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ *model.AnalysisReport) error { return nil }
func (n *NoopRecorder) RecordBatch(_ []model.PortfolioResult) error  { return nil }
func (n *NoopRecorder) Close() error                                 { return nil }
