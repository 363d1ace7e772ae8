package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"LithiumWatch/internal/analyst"
	"LithiumWatch/internal/collector"
	"LithiumWatch/internal/config"
	"LithiumWatch/internal/notifier"
	"LithiumWatch/internal/recorder"
	"LithiumWatch/internal/report"
	"LithiumWatch/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] LithiumWatch starting...")

	godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetchers and collector
	spot := collector.NewSMMFetcher(cfg.Source.SpotURL, cfg.Source.UserAgent, cfg.FetchTimeout(), cfg.Proxy)
	futures := collector.NewEastmoneyFetcher(cfg.Source.FuturesURL, cfg.Source.UserAgent, cfg.FetchTimeout(), cfg.Proxy)
	col := collector.NewCollector(spot, futures)
	log.Printf("[INFO] data sources: %s, %s", spot.Name(), futures.Name())

	// Init analyst
	an := analyst.New(analyst.NewOpenAIClient(cfg.OpenAI.Model))

	// Init recorder
	var rec recorder.Recorder
	if cfg.Data.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Data.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier (optional)
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		log.Println("[INFO] telegram notifications enabled")
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, an, cfg.Data.ReportFile, tn, rec)

	// Single-shot mode: run the pipeline once and print the report
	if !cfg.Schedule.Enabled {
		rep, err := sched.RunOnce()
		if err != nil {
			log.Fatalf("[FATAL] report run: %v", err)
		}
		data, err := report.Encode(rep)
		if err != nil {
			log.Fatalf("[FATAL] encode report: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	// Daemon mode: run on the daily cron schedule
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, generating report now")
		go func() {
			if _, err := sched.RunOnce(); err != nil {
				log.Printf("[ERROR] initial report: %v", err)
			}
		}()
	}

	log.Println("[INFO] LithiumWatch is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] LithiumWatch stopped")
}
