package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rhyrak/go-dashboard/internal/api"
	"github.com/rhyrak/go-dashboard/internal/config"
	"github.com/rhyrak/go-dashboard/internal/csvio"
	"github.com/rhyrak/go-dashboard/internal/dashboard"
	"github.com/rhyrak/go-dashboard/internal/logger"
	"github.com/rhyrak/go-dashboard/internal/store"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

func main() {
	cfg, err := config.Load(os.Getenv("DASHBOARD_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log, logger.ComponentServer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting dashboard server",
		zap.Int("port", cfg.Server.Port),
		zap.String("format", cfg.Data.Format),
	)

	loader := csvio.NewLoader(csvio.SourceFromConfig(cfg.Data), log)
	snap, err := loader.Load(context.Background())
	if err != nil {
		// serve an empty snapshot; POST /reload retries once the data is fixed
		log.Error("initial load failed", zap.Error(err))
		snap = &model.Snapshot{}
	}

	database, err := store.OpenDB(cfg.Store.Path)
	if err != nil {
		log.Fatal("opening report store failed", zap.Error(err))
	}
	defer database.Close()

	svc := dashboard.NewService(snap, dashboard.Options{
		CapacityBonus:       cfg.Analysis.CapacityBonus,
		LowStudentThreshold: cfg.Analysis.LowStudentThreshold,
		LatestAdmitted:      cfg.Analysis.LatestAdmitted,
	}, log)

	gin.SetMode(gin.ReleaseMode)
	h := api.NewHandler(svc, store.NewReportStore(database), loader, log)
	engine := api.NewRouter(h, cfg.Server.AllowOrigins, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
}
