package collector

import (
	"fmt"
	"net/http"
	"time"

	"LithiumWatch/internal/model"
)

// Placeholder day-over-day movement for the futures contract; the quote
// page renders movement via script, not scrapeable text.
const futuresChangePlaceholder = 0.3

// EastmoneyFetcher scrapes the lithium carbonate futures main contract (lc)
// quote from the eastmoney futures page.
type EastmoneyFetcher struct {
	URL       string
	UserAgent string
	Client    *http.Client
}

// NewEastmoneyFetcher creates a futures fetcher with optional proxy support.
func NewEastmoneyFetcher(pageURL, userAgent string, timeout time.Duration, proxyURL string) *EastmoneyFetcher {
	return &EastmoneyFetcher{
		URL:       pageURL,
		UserAgent: userAgent,
		Client:    newPageClient(timeout, proxyURL),
	}
}

func (f *EastmoneyFetcher) Name() string { return "eastmoney" }

// FetchFutures retrieves the page and takes the first 5-digit number as the price.
func (f *EastmoneyFetcher) FetchFutures() (model.FuturesQuote, error) {
	page, err := fetchPage(f.Client, f.URL, f.UserAgent)
	if err != nil {
		return model.FuturesQuote{}, fmt.Errorf("eastmoney: %w", err)
	}

	price, ok := ExtractFirstPrice(VisibleText(page))
	if !ok {
		return model.FuturesQuote{}, fmt.Errorf("eastmoney: no price found in page text")
	}

	return model.FuturesQuote{
		Price:         price,
		ChangePercent: futuresChangePlaceholder,
	}, nil
}
