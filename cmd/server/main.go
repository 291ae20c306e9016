package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/fdtools/balancelog/pkg/config"
	"github.com/fdtools/balancelog/pkg/server"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "balancelog",
	})

	var cfgFile string
	flag.StringVar(&cfgFile, "config", "", "Config file (default is balancelog.yaml)")
	flag.Parse()

	cfg, err := config.Build(cfgFile, nil)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}

	srv := server.New(cfg, logger)
	logger.Info("starting server", "addr", cfg.Listen)
	if err := srv.Start(cfg.Listen); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
