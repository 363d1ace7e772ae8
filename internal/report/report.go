// Package report assembles the daily market record and persists it.
package report

import (
	"time"

	"LithiumWatch/internal/model"
)

// Build merges the day's quotes and chart series into one MarketReport.
func Build(now time.Time, spot model.SpotQuote, futures model.FuturesQuote, hist []model.PricePoint) *model.MarketReport {
	return &model.MarketReport{
		Timestamp: now.Format(time.RFC3339),
		Date:      spot.Date,
		SpotPrice: model.SpotSection{
			BatteryGrade:       spot.BatteryGrade,
			IndustrialGrade:    spot.IndustrialGrade,
			DailyChangePercent: spot.ChangePercent,
		},
		FuturesPrice: model.FuturesSection{
			LCMain:             futures.Price,
			DailyChangePercent: futures.ChangePercent,
		},
		PriceHistory: hist,
	}
}
