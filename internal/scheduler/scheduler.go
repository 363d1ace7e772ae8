package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"LithiumWatch/internal/analyst"
	"LithiumWatch/internal/collector"
	"LithiumWatch/internal/history"
	"LithiumWatch/internal/model"
	"LithiumWatch/internal/notifier"
	"LithiumWatch/internal/recorder"
	"LithiumWatch/internal/report"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the report pipeline, either once or on a cron schedule.
type Scheduler struct {
	Cron       *cron.Cron
	Collector  *collector.Collector
	Analyst    *analyst.Analyst
	ReportFile string
	Notifier   *notifier.TelegramNotifier // nil when Telegram is not configured
	Recorder   recorder.Recorder
	Ctx        context.Context

	mu         sync.Mutex
	lastReport *model.MarketReport
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, an *analyst.Analyst, reportFile string, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Collector:  col,
		Analyst:    an,
		ReportFile: reportFile,
		Notifier:   tn,
		Recorder:   rec,
		Ctx:        ctx,
	}
}

// Register registers the daily report task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunOnce executes the full pipeline: collect, synthesize, summarize,
// persist, record, notify. Only persistence errors are returned; every
// upstream failure degrades to a fallback value.
func (s *Scheduler) RunOnce() (*model.MarketReport, error) {
	log.Println("[INFO] collecting market data...")

	now := time.Now()
	spotRes := s.Collector.CollectSpot()
	futuresRes := s.Collector.CollectFutures()

	rep := report.Build(now, spotRes.Quote, futuresRes.Quote, history.Generate(now))
	rep.AIAnalysis = s.Analyst.Summarize(s.Ctx, spotRes.Quote, futuresRes.Quote)

	if err := report.Write(s.ReportFile, rep); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	log.Printf("[INFO] report saved to %s", s.ReportFile)

	if err := s.Recorder.RecordRun(&recorder.RunRecord{
		Timestamp:       now.Unix(),
		Date:            rep.Date,
		BatteryGrade:    spotRes.Quote.BatteryGrade,
		IndustrialGrade: spotRes.Quote.IndustrialGrade,
		SpotChange:      spotRes.Quote.ChangePercent,
		SpotFallback:    spotRes.Fallback,
		FuturesPrice:    futuresRes.Quote.Price,
		FuturesChange:   futuresRes.Quote.ChangePercent,
		FuturesFallback: futuresRes.Fallback,
		Analysis:        rep.AIAnalysis,
	}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	s.mu.Lock()
	s.lastReport = rep
	s.mu.Unlock()

	s.trySend(notifier.FormatReport(rep))
	return rep, nil
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily report task")
	if _, err := s.RunOnce(); err != nil {
		log.Printf("[ERROR] daily report: %v", err)
		s.trySend(fmt.Sprintf("❌ 日报生成失败: %v", err))
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "生成日报", "/report":
		s.dailyTask()
		return ""
	case "查看最新", "/latest":
		s.mu.Lock()
		rep := s.lastReport
		s.mu.Unlock()
		if rep == nil {
			return "暂无报告，发送 /report 生成"
		}
		return notifier.FormatReport(rep)
	case "查看历史", "/history":
		records, err := s.Recorder.RecentRuns(10)
		if err != nil {
			log.Printf("[ERROR] load run history: %v", err)
			return "历史记录读取失败"
		}
		return notifier.FormatRecentRuns(records)
	default:
		return "可用命令:\n• 生成日报 (/report)\n• 查看最新 (/latest)\n• 查看历史 (/history)"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 2); err != nil {
		log.Printf("[ERROR] telegram notify: %v", err)
	}
}
