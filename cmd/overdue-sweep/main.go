// Command overdue-sweep flips approved borrow requests past their return
// date to OVERDUE. Meant to run from cron once a day.
package main

import (
	"context"
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bookward/library-management/config"
	"github.com/bookward/library-management/internal/repository"
	"github.com/bookward/library-management/internal/service"
	"github.com/bookward/library-management/migrations"
	"github.com/bookward/library-management/pkg/logger"
	"github.com/bookward/library-management/pkg/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Print("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig()
	log := logger.NewLogger(cfg.Log, "overdue-sweep")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo init", zap.Error(err))
	}
	svc := service.NewBorrowService(repo, nil, log)

	swept, err := svc.SweepOverdue(ctx)
	if err != nil {
		log.Fatal("sweep overdue", zap.Error(err))
	}
	log.Info("sweep finished", zap.Int64("requests", swept))
}
