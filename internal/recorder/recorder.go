package recorder

// RunRecord holds the observed quotes and summary from one pipeline run.
type RunRecord struct {
	Timestamp       int64
	Date            string
	BatteryGrade    float64
	IndustrialGrade float64
	SpotChange      float64
	SpotFallback    bool
	FuturesPrice    float64
	FuturesChange   float64
	FuturesFallback bool
	Analysis        string
}

// Recorder persists per-run price history for later analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	RecentRuns(limit int) ([]RunRecord, error)
	Close() error
}
