package notifier

import (
	"fmt"
	"strings"

	"LithiumWatch/internal/model"
	"LithiumWatch/internal/recorder"
)

// FormatReport formats the daily market report into a Telegram message.
func FormatReport(rep *model.MarketReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🔋 <b>碳酸锂市场日报</b> | %s\n\n", rep.Date))

	b.WriteString(fmt.Sprintf("电池级现货均价: %.0f 元/吨 (%+.1f%%)\n",
		rep.SpotPrice.BatteryGrade, rep.SpotPrice.DailyChangePercent))
	b.WriteString(fmt.Sprintf("工业级现货均价: %.0f 元/吨\n", rep.SpotPrice.IndustrialGrade))
	b.WriteString(fmt.Sprintf("期货主力合约: %.0f 元/吨 (%+.1f%%)\n",
		rep.FuturesPrice.LCMain, rep.FuturesPrice.DailyChangePercent))

	if low, high, ok := seriesRange(rep.PriceHistory); ok {
		b.WriteString(fmt.Sprintf("近30日区间: %.0f ~ %.0f 元/吨\n", low, high))
	}

	if rep.AIAnalysis != "" {
		b.WriteString(fmt.Sprintf("\n🤖 %s\n", rep.AIAnalysis))
	}

	return b.String()
}

// FormatRecentRuns formats recorded run history, newest first.
func FormatRecentRuns(records []recorder.RunRecord) string {
	if len(records) == 0 {
		return "暂无历史记录"
	}

	var b strings.Builder
	b.WriteString("📜 <b>近期价格记录</b>\n\n")
	for _, rec := range records {
		mark := ""
		if rec.SpotFallback {
			mark = " (模拟)"
		}
		b.WriteString(fmt.Sprintf("%s  电池级 %.0f | 期货 %.0f%s\n",
			rec.Date, rec.BatteryGrade, rec.FuturesPrice, mark))
	}
	return b.String()
}

func seriesRange(points []model.PricePoint) (low, high float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}
	low, high = points[0].Price, points[0].Price
	for _, p := range points[1:] {
		if p.Price < low {
			low = p.Price
		}
		if p.Price > high {
			high = p.Price
		}
	}
	return low, high, true
}
