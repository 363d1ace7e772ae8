package collector

import (
	"log"
	"time"

	"LithiumWatch/internal/model"
)

// Fixed fallback quotes used when a source is unreachable or yields no
// parseable price. The run always completes with a full data set.
const (
	FallbackBatteryGrade    = 80500.0
	FallbackIndustrialGrade = 78300.0
	FallbackSpotChange      = -0.5
	FallbackFuturesPrice    = 79800.0
	FallbackFuturesChange   = 0.3
)

// MockSpotFetcher returns controllable fixed data for development and testing.
type MockSpotFetcher struct {
	Quote model.SpotQuote
	Err   error
}

func (m *MockSpotFetcher) Name() string { return "mock" }

func (m *MockSpotFetcher) FetchSpot() (model.SpotQuote, error) {
	return m.Quote, m.Err
}

// MockFuturesFetcher returns controllable fixed data for development and testing.
type MockFuturesFetcher struct {
	Quote model.FuturesQuote
	Err   error
}

func (m *MockFuturesFetcher) Name() string { return "mock" }

func (m *MockFuturesFetcher) FetchFutures() (model.FuturesQuote, error) {
	return m.Quote, m.Err
}

// Collector orchestrates quote fetching and applies fallbacks.
type Collector struct {
	Spot    SpotFetcher
	Futures FuturesFetcher
}

// NewCollector creates a new Collector.
func NewCollector(spot SpotFetcher, futures FuturesFetcher) *Collector {
	return &Collector{Spot: spot, Futures: futures}
}

// CollectSpot fetches the spot quote, substituting the fixed fallback on failure.
func (c *Collector) CollectSpot() model.SpotResult {
	quote, err := c.Spot.FetchSpot()
	if err != nil {
		log.Printf("[WARN] spot fetch failed (%s), using fallback quote: %v", c.Spot.Name(), err)
		return model.SpotResult{
			Quote: model.SpotQuote{
				Date:            time.Now().Format("2006-01-02"),
				BatteryGrade:    FallbackBatteryGrade,
				IndustrialGrade: FallbackIndustrialGrade,
				ChangePercent:   FallbackSpotChange,
			},
			Fallback:       true,
			FallbackReason: err.Error(),
		}
	}
	return model.SpotResult{Quote: quote}
}

// CollectFutures fetches the futures quote, substituting the fixed fallback on failure.
func (c *Collector) CollectFutures() model.FuturesResult {
	quote, err := c.Futures.FetchFutures()
	if err != nil {
		log.Printf("[WARN] futures fetch failed (%s), using fallback quote: %v", c.Futures.Name(), err)
		return model.FuturesResult{
			Quote: model.FuturesQuote{
				Price:         FallbackFuturesPrice,
				ChangePercent: FallbackFuturesChange,
			},
			Fallback:       true,
			FallbackReason: err.Error(),
		}
	}
	return model.FuturesResult{Quote: quote}
}
