package model

// SpotSection is the spot price projection written into the report artifact.
type SpotSection struct {
	BatteryGrade       float64 `json:"battery_grade"`
	IndustrialGrade    float64 `json:"industrial_grade"`
	DailyChangePercent float64 `json:"daily_change_percent"`
}

// FuturesSection is the futures price projection written into the report artifact.
type FuturesSection struct {
	LCMain             float64 `json:"lc_main"`
	DailyChangePercent float64 `json:"daily_change_percent"`
}

// MarketReport is the full daily market record persisted to disk.
type MarketReport struct {
	Timestamp    string         `json:"timestamp"`
	Date         string         `json:"date"`
	SpotPrice    SpotSection    `json:"spot_price"`
	FuturesPrice FuturesSection `json:"futures_price"`
	PriceHistory []PricePoint   `json:"price_history"`
	AIAnalysis   string         `json:"ai_analysis"`
}
