package collector

import (
	"regexp"
	"strconv"
)

// Price extraction is kept as pure text functions so it can be tested
// without network access. The source pages carry quotes either as a
// bare 5-digit number ("80500") or a 5-digit range ("80500-82300").
var (
	spotPricePattern  = regexp.MustCompile(`(\d{5})\s*-\s*(\d{5})|(\d{5})`)
	firstPricePattern = regexp.MustCompile(`\d{5}`)

	scriptPattern = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
)

// VisibleText strips script/style blocks and markup tags from an HTML page,
// leaving roughly the text a browser would render.
func VisibleText(html string) string {
	return tagPattern.ReplaceAllString(scriptPattern.ReplaceAllString(html, " "), " ")
}

// ExtractSpotPrice scans text for the first spot quote. A range yields its
// midpoint; a single number yields itself.
func ExtractSpotPrice(text string) (float64, bool) {
	m := spotPricePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	if m[1] != "" {
		low, _ := strconv.ParseFloat(m[1], 64)
		high, _ := strconv.ParseFloat(m[2], 64)
		return (low + high) / 2, true
	}
	v, _ := strconv.ParseFloat(m[3], 64)
	return v, true
}

// ExtractFirstPrice scans text for the first 5-digit number.
func ExtractFirstPrice(text string) (float64, bool) {
	m := firstPricePattern.FindString(text)
	if m == "" {
		return 0, false
	}
	v, _ := strconv.ParseFloat(m, 64)
	return v, true
}
