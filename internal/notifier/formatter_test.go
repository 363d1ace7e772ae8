package notifier

import (
	"strings"
	"testing"

	"LithiumWatch/internal/model"
	"LithiumWatch/internal/recorder"
)

func TestFormatReport(t *testing.T) {
	rep := &model.MarketReport{
		Date: "2026-08-30",
		SpotPrice: model.SpotSection{
			BatteryGrade:       80500,
			IndustrialGrade:    78300,
			DailyChangePercent: -0.5,
		},
		FuturesPrice: model.FuturesSection{LCMain: 79800, DailyChangePercent: 0.3},
		PriceHistory: []model.PricePoint{
			{Date: "2026-08-28", Price: 79000},
			{Date: "2026-08-29", Price: 83000},
		},
		AIAnalysis: "市场交投清淡。",
	}

	msg := FormatReport(rep)
	for _, want := range []string{
		"碳酸锂市场日报", "2026-08-30",
		"80500 元/吨 (-0.5%)", "78300 元/吨",
		"79800 元/吨 (+0.3%)",
		"79000 ~ 83000",
		"市场交投清淡。",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatReport_NoHistoryNoAnalysis(t *testing.T) {
	msg := FormatReport(&model.MarketReport{Date: "2026-08-30"})
	if strings.Contains(msg, "近30日区间") {
		t.Error("range line must be omitted without history")
	}
	if strings.Contains(msg, "🤖") {
		t.Error("analysis line must be omitted when empty")
	}
}

func TestFormatRecentRuns(t *testing.T) {
	if msg := FormatRecentRuns(nil); !strings.Contains(msg, "暂无历史记录") {
		t.Errorf("expected empty-state message, got %q", msg)
	}

	msg := FormatRecentRuns([]recorder.RunRecord{
		{Date: "2026-08-30", BatteryGrade: 80500, FuturesPrice: 79800, SpotFallback: true},
		{Date: "2026-08-29", BatteryGrade: 81400, FuturesPrice: 80200},
	})
	if !strings.Contains(msg, "2026-08-30") || !strings.Contains(msg, "(模拟)") {
		t.Errorf("expected fallback marker on simulated row:\n%s", msg)
	}
	if strings.Count(msg, "电池级") != 2 {
		t.Errorf("expected two rows:\n%s", msg)
	}
}
