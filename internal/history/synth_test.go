package history

import (
	"testing"
	"time"
)

func TestGenerate_SeriesShape(t *testing.T) {
	ref := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	points := Generate(ref)

	if len(points) != 30 {
		t.Fatalf("expected 30 points, got %d", len(points))
	}
	if points[0].Date != "2026-07-31" {
		t.Errorf("expected oldest point 2026-07-31, got %s", points[0].Date)
	}
	if points[29].Date != "2026-08-29" {
		t.Errorf("expected newest point to be the day before ref, got %s", points[29].Date)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Date <= points[i-1].Date {
			t.Fatalf("dates not strictly increasing at index %d: %s then %s", i, points[i-1].Date, points[i].Date)
		}
	}
}

func TestGenerate_PriceFormula(t *testing.T) {
	ref := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	points := Generate(ref)

	// points[k] corresponds to i = 30-k days before ref
	for k, p := range points {
		i := 30 - k
		want := 80500 + float64(i%10)*500 - 2000
		if p.Price != want {
			t.Errorf("point %d (i=%d): expected price %.0f, got %.0f", k, i, want, p.Price)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	ref := time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)
	a := Generate(ref)
	b := Generate(ref)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("series differ at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
