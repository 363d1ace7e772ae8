package collector

import (
	"fmt"
	"net/http"
	"time"

	"LithiumWatch/internal/model"
)

// Battery-grade and industrial-grade lithium carbonate trade at a roughly
// fixed spread; the industrial-grade quote is derived, not scraped.
const industrialGradeSpread = 2200.0

// The SMM page does not expose day-over-day movement in scrapeable form;
// the change percent is a placeholder until a real signal source exists.
const spotChangePlaceholder = -0.5

// SMMFetcher scrapes the battery-grade lithium carbonate spot quote from
// the SMM (上海有色网) mobile quote page.
type SMMFetcher struct {
	URL       string
	UserAgent string
	Client    *http.Client
}

// NewSMMFetcher creates a spot fetcher with optional proxy support.
func NewSMMFetcher(pageURL, userAgent string, timeout time.Duration, proxyURL string) *SMMFetcher {
	return &SMMFetcher{
		URL:       pageURL,
		UserAgent: userAgent,
		Client:    newPageClient(timeout, proxyURL),
	}
}

func (f *SMMFetcher) Name() string { return "smm" }

// FetchSpot retrieves the page and extracts the first quoted price.
func (f *SMMFetcher) FetchSpot() (model.SpotQuote, error) {
	page, err := fetchPage(f.Client, f.URL, f.UserAgent)
	if err != nil {
		return model.SpotQuote{}, fmt.Errorf("smm: %w", err)
	}

	price, ok := ExtractSpotPrice(VisibleText(page))
	if !ok {
		return model.SpotQuote{}, fmt.Errorf("smm: no price found in page text")
	}

	return model.SpotQuote{
		Date:            time.Now().Format("2006-01-02"),
		BatteryGrade:    price,
		IndustrialGrade: price - industrialGradeSpread,
		ChangePercent:   spotChangePlaceholder,
	}, nil
}
