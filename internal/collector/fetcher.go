package collector

import "LithiumWatch/internal/model"

// SpotFetcher retrieves the lithium carbonate spot quote from an external source.
type SpotFetcher interface {
	FetchSpot() (model.SpotQuote, error)
	Name() string
}

// FuturesFetcher retrieves the futures main contract quote from an external source.
type FuturesFetcher interface {
	FetchFutures() (model.FuturesQuote, error)
	Name() string
}
