package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CandleScope/internal/analyzer"
	"CandleScope/internal/collector"
	"CandleScope/internal/config"
	"CandleScope/internal/recorder"
	"CandleScope/internal/server"
	"CandleScope/internal/watch"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CandleScope starting...")

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

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
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

	an := analyzer.New(fetcher)

	// Optional scheduled re-analysis of watched symbols
	if len(cfg.Watch.Symbols) > 0 {
		w := watch.NewWatcher(an, rec, cfg.Watch.Symbols, cfg.DataSource.LookbackDays)
		if err := w.Register(cfg.Watch.Cron); err != nil {
			log.Fatalf("[FATAL] register watch task: %v", err)
		}
		w.Start()
		defer w.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Println("[INFO] RUN_ON_START enabled, executing watch task now")
			go w.RunNow()
		}
	}

	// Init HTTP server
	srv := server.NewServer(server.Config{
		Host:          cfg.Server.Host,
		Port:          cfg.Server.Port,
		DefaultSymbol: cfg.DataSource.DefaultSymbol,
		LookbackDays:  cfg.DataSource.LookbackDays,
	}, an, rec)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	log.Println("[INFO] CandleScope is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("[INFO] shutdown signal received: %v", sig)
	case err := <-errCh:
		if err != nil {
			log.Printf("[ERROR] http server: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	log.Println("[INFO] CandleScope stopped")
}
