// Package history produces the 30-day price series used for charting.
// The series is synthesized from a fixed base price, not fetched; real
// observed quotes are recorded separately (see internal/recorder).
package history

import (
	"time"

	"LithiumWatch/internal/model"
)

const (
	basePrice = 80500.0
	seriesLen = 30
)

// Generate returns a deterministic 30-point daily series for the 30 days
// preceding ref (ref itself excluded), oldest first.
func Generate(ref time.Time) []model.PricePoint {
	points := make([]model.PricePoint, 0, seriesLen)
	for i := seriesLen; i >= 1; i-- {
		points = append(points, model.PricePoint{
			Date:  ref.AddDate(0, 0, -i).Format("2006-01-02"),
			Price: basePrice + float64(i%10)*500 - 2000,
		})
	}
	return points
}
