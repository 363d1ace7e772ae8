package analyst

import (
	"context"
	"errors"
	"strings"
	"testing"

	"LithiumWatch/internal/model"
)

// fakeClient returns a fixed reply or error.
type fakeClient struct {
	reply  string
	err    error
	system string
	user   string
}

func (f *fakeClient) Complete(_ context.Context, system, user string) (string, error) {
	f.system = system
	f.user = user
	return f.reply, f.err
}

func TestSummarize_Success(t *testing.T) {
	fake := &fakeClient{reply: "市场平稳运行。"}
	a := New(fake)

	got := a.Summarize(context.Background(), model.SpotQuote{BatteryGrade: 80500, ChangePercent: -0.5}, model.FuturesQuote{Price: 79800})
	if got != "市场平稳运行。" {
		t.Errorf("expected model reply, got %q", got)
	}
	if fake.system == "" {
		t.Error("expected a system prompt")
	}
}

func TestSummarize_FallbackBySign(t *testing.T) {
	tests := []struct {
		change float64
		want   string
	}{
		{1.0, fallbackRising},
		{-1.0, fallbackFalling},
		{0.0, fallbackFlat},
	}
	a := New(&fakeClient{err: errors.New("quota exceeded")})

	for _, tt := range tests {
		got := a.Summarize(context.Background(), model.SpotQuote{BatteryGrade: 80500, ChangePercent: tt.change}, model.FuturesQuote{Price: 79800})
		if got != tt.want {
			t.Errorf("change %+.1f: expected %q, got %q", tt.change, tt.want, got)
		}
	}
}

func TestFallbackSummary_Verbatim(t *testing.T) {
	if got := FallbackSummary(1.0); got != "今日电池级碳酸锂价格小幅上涨，市场供需关系相对均衡。期货主力合约跟涨，显示市场情绪稳定。" {
		t.Errorf("rising sentence mismatch: %q", got)
	}
	if got := FallbackSummary(-1.0); got != "今日电池级碳酸锂价格小幅下跌，市场观望情绪浓厚。期货主力合约走势疲弱，建议关注下游备货节奏。" {
		t.Errorf("falling sentence mismatch: %q", got)
	}
	if got := FallbackSummary(0.0); got != "今日电池级碳酸锂价格保持稳定，市场交投清淡。期货主力合约横盘整理，等待新的市场信号。" {
		t.Errorf("flat sentence mismatch: %q", got)
	}
}

func TestBuildPrompt_Formatting(t *testing.T) {
	prompt := BuildPrompt(
		model.SpotQuote{BatteryGrade: 80500.4, ChangePercent: -0.5},
		model.FuturesQuote{Price: 79800.0},
	)

	for _, want := range []string{"80500 元/吨", "-0.5%", "79800 元/吨"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}

	promptUp := BuildPrompt(model.SpotQuote{BatteryGrade: 80500, ChangePercent: 0.5}, model.FuturesQuote{Price: 79800})
	if !strings.Contains(promptUp, "+0.5%") {
		t.Errorf("positive change must carry explicit sign:\n%s", promptUp)
	}
}
