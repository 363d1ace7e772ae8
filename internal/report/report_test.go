package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"LithiumWatch/internal/history"
	"LithiumWatch/internal/model"
)

func sampleReport() *model.MarketReport {
	now := time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC)
	spot := model.SpotQuote{
		Date:            "2026-08-30",
		BatteryGrade:    80500,
		IndustrialGrade: 78300,
		ChangePercent:   -0.5,
	}
	futures := model.FuturesQuote{Price: 79800, ChangePercent: 0.3}
	rep := Build(now, spot, futures, history.Generate(now))
	rep.AIAnalysis = "今日电池级碳酸锂价格保持稳定，市场交投清淡。"
	return rep
}

func TestBuild_FieldMapping(t *testing.T) {
	rep := sampleReport()

	if rep.Date != "2026-08-30" {
		t.Errorf("expected date from spot quote, got %s", rep.Date)
	}
	if rep.Timestamp != "2026-08-30T09:15:00Z" {
		t.Errorf("expected RFC3339 timestamp, got %s", rep.Timestamp)
	}
	if rep.SpotPrice.BatteryGrade != 80500 || rep.SpotPrice.IndustrialGrade != 78300 {
		t.Errorf("spot section mismatch: %+v", rep.SpotPrice)
	}
	if rep.FuturesPrice.LCMain != 79800 || rep.FuturesPrice.DailyChangePercent != 0.3 {
		t.Errorf("futures section mismatch: %+v", rep.FuturesPrice)
	}
	if len(rep.PriceHistory) != 30 {
		t.Errorf("expected 30 history points, got %d", len(rep.PriceHistory))
	}
}

func TestEncode_JSONShape(t *testing.T) {
	data, err := Encode(sampleReport())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	text := string(data)
	for _, key := range []string{
		`"timestamp"`, `"date"`, `"spot_price"`, `"battery_grade"`,
		`"industrial_grade"`, `"daily_change_percent"`, `"futures_price"`,
		`"lc_main"`, `"price_history"`, `"ai_analysis"`,
	} {
		if !strings.Contains(text, key) {
			t.Errorf("encoded report missing key %s", key)
		}
	}

	// Non-ASCII must be written literally, not \u-escaped.
	if !strings.Contains(text, "碳酸锂") {
		t.Error("expected literal non-ASCII text in output")
	}
	if strings.Contains(text, `\u`) {
		t.Error("output must not contain unicode escapes")
	}
	if !strings.Contains(text, "\n  \"date\"") {
		t.Error("expected two-space indentation")
	}
}

func TestWrite_CreatesNestedDirsAndRoundTrips(t *testing.T) {
	rep := sampleReport()
	path := filepath.Join(t.TempDir(), "deep", "nested", "dir", "market_data.json")

	if err := Write(path, rep); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var got model.MarketReport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(&got, rep) {
		t.Errorf("round-trip mismatch:\nwant %+v\ngot  %+v", rep, &got)
	}
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market_data.json")

	first := sampleReport()
	if err := Write(path, first); err != nil {
		t.Fatalf("first write: %v", err)
	}

	second := sampleReport()
	second.AIAnalysis = "第二次写入"
	if err := Write(path, second); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, _ := os.ReadFile(path)
	var got model.MarketReport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.AIAnalysis != "第二次写入" {
		t.Errorf("expected overwritten analysis, got %q", got.AIAnalysis)
	}
}
