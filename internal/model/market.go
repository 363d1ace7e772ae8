package model

// SpotQuote holds the battery-grade lithium carbonate spot quote for one day.
type SpotQuote struct {
	Date            string
	BatteryGrade    float64
	IndustrialGrade float64
	ChangePercent   float64
}

// FuturesQuote holds the lithium carbonate futures main contract quote.
type FuturesQuote struct {
	Price         float64
	ChangePercent float64
}

// SpotResult carries a spot quote plus the fallback branch it came from.
type SpotResult struct {
	Quote          SpotQuote
	Fallback       bool
	FallbackReason string
}

// FuturesResult carries a futures quote plus the fallback branch it came from.
type FuturesResult struct {
	Quote          FuturesQuote
	Fallback       bool
	FallbackReason string
}

// PricePoint is a single day in the 30-day chart series.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}
