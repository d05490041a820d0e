// Command process-deletions erases every account whose deletion request has
// passed its grace period. It is intended to be invoked by an external cron
// job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error or at least one failed erasure.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/ecomind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecomind-backend/internal/app"
	"github.com/heartmarshall/ecomind-backend/internal/config"
)

func main() {
	configPath := pflag.String("config", "", "path to config.yaml (overrides CONFIG_PATH)")
	limit := pflag.Int("limit", 100, "maximum number of requests to process")
	timeout := pflag.Duration("timeout", 30*time.Minute, "overall deadline")
	pflag.Parse()

	cfg, err := config.LoadWithPath(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "process-deletions")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, "ecomind-process-deletions")
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs, err := app.NewServices(ctx, cfg, logger, pool, postgres.NewTxManager(pool))
	if err != nil {
		logger.Error("wire services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	report, err := svcs.Privacy.ProcessDueDeletions(ctx, time.Now(), *limit)
	if err != nil {
		logger.Error("process deletions failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("process deletions completed",
		slog.Int("processed", report.Processed),
		slog.Int("completed", report.Completed),
		slog.Int("failed", report.Failed),
		slog.Int("documents_deleted", report.DocumentsDeleted),
	)
	if report.Failed > 0 {
		os.Exit(1)
	}
}
