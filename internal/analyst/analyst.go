// Package analyst turns the day's quotes into a one-sentence market summary
// via a language model, with canned sentences as the offline fallback.
package analyst

import (
	"context"
	"fmt"
	"log"

	"LithiumWatch/internal/model"
)

const systemPrompt = "你是一位专业的大宗商品市场分析师，擅长用简洁的语言总结市场动向。"

const promptTemplate = `你是一位专业的锂矿和碳酸锂市场分析师。基于以下市场数据，用一句话（不超过 50 字）总结今日市场情况和趋势判断：

- 电池级碳酸锂现货均价：%.0f 元/吨
- 日涨跌幅：%+.1f%%
- 碳酸锂期货主力合约价：%.0f 元/吨

请用简洁、专业的语言进行总结，突出市场的关键特点和可能的短期趋势。`

// Canned summaries keyed on the sign of the day's change, used when the
// completion call fails for any reason.
const (
	fallbackRising  = "今日电池级碳酸锂价格小幅上涨，市场供需关系相对均衡。期货主力合约跟涨，显示市场情绪稳定。"
	fallbackFalling = "今日电池级碳酸锂价格小幅下跌，市场观望情绪浓厚。期货主力合约走势疲弱，建议关注下游备货节奏。"
	fallbackFlat    = "今日电池级碳酸锂价格保持稳定，市场交投清淡。期货主力合约横盘整理，等待新的市场信号。"
)

// Analyst generates the daily market summary.
type Analyst struct {
	Client CompletionClient
}

// New creates an Analyst backed by the given completion client.
func New(client CompletionClient) *Analyst {
	return &Analyst{Client: client}
}

// BuildPrompt renders the user prompt for the given quotes.
func BuildPrompt(spot model.SpotQuote, futures model.FuturesQuote) string {
	return fmt.Sprintf(promptTemplate, spot.BatteryGrade, spot.ChangePercent, futures.Price)
}

// FallbackSummary picks the canned sentence for the sign of the day's change.
func FallbackSummary(changePercent float64) string {
	switch {
	case changePercent > 0:
		return fallbackRising
	case changePercent < 0:
		return fallbackFalling
	default:
		return fallbackFlat
	}
}

// Summarize asks the model for a one-sentence summary. It never fails: on
// any error the canned sentence for the day's change sign is returned.
func (a *Analyst) Summarize(ctx context.Context, spot model.SpotQuote, futures model.FuturesQuote) string {
	summary, err := a.Client.Complete(ctx, systemPrompt, BuildPrompt(spot, futures))
	if err != nil {
		log.Printf("[WARN] AI analysis failed, using canned summary: %v", err)
		return FallbackSummary(spot.ChangePercent)
	}
	return summary
}
