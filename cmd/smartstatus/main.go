package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zapcore"

	"smartstatus/internal/config"
	"smartstatus/internal/demo"
	"smartstatus/internal/logging"
	"smartstatus/internal/tracing"
)

func main() {
	cfgPath := os.Getenv("SMARTSTATUS_CONFIG")
	if cfgPath == "" {
		if _, err := os.Stat("smartstatus.yaml"); err == nil {
			cfgPath = "smartstatus.yaml"
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	level := zapcore.InfoLevel
	_ = level.Set(cfg.LogLevel)
	log, err := logging.New(cfg.LogDir, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	tr, err := tracing.Init(ctx, cfg.OTLPEndpoint, "smartstatus")
	if err != nil {
		log.Warnw("tracing disabled", "err", err)
		tr, _ = tracing.Init(ctx, "", "smartstatus")
	}
	defer tr.Shutdown(ctx)

	m := demo.New(cfg, log, tr.Tracer())
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
