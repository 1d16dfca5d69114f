package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rhyrak/go-dashboard/internal/cli"
	"github.com/rhyrak/go-dashboard/internal/config"
	"github.com/rhyrak/go-dashboard/internal/csvio"
	"github.com/rhyrak/go-dashboard/internal/dashboard"
	"github.com/rhyrak/go-dashboard/internal/logger"
	"github.com/rhyrak/go-dashboard/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DASHBOARD_CONFIG may point at a config file outside ./config
	cfg, err := config.Load(os.Getenv("DASHBOARD_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log, logger.ComponentCLI)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := context.Background()
	snap, err := csvio.NewLoader(csvio.SourceFromConfig(cfg.Data), log).Load(ctx)
	if err != nil {
		return err
	}

	database, err := store.OpenDB(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer database.Close()

	svc := dashboard.NewService(snap, dashboard.Options{
		CapacityBonus:       cfg.Analysis.CapacityBonus,
		LowStudentThreshold: cfg.Analysis.LowStudentThreshold,
		LatestAdmitted:      cfg.Analysis.LatestAdmitted,
	}, log)

	app := &cli.App{
		Service:   svc,
		Reports:   store.NewReportStore(database),
		Delimiter: cfg.Data.DelimiterRune(),
	}
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
