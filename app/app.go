package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookward/library-management/config"
	"github.com/bookward/library-management/internal/handler"
	"github.com/bookward/library-management/internal/repository"
	"github.com/bookward/library-management/internal/server"
	"github.com/bookward/library-management/internal/service"
	"github.com/bookward/library-management/migrations"
	"github.com/bookward/library-management/pkg/kafka"
	"github.com/bookward/library-management/pkg/logger"
	"github.com/bookward/library-management/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %w", err)
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewProducer %w", err)
	}
	mailSvc := service.NewMailService(repo, producer, service.NewLogSender(log), log)

	catalogSvc := service.NewCatalogService(repo, log)
	borrowSvc := service.NewBorrowService(repo, mailSvc, log)
	statsSvc := service.NewStatsService(repo, log)
	exportSvc := service.NewExportService(repo, log)

	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.NotificationsConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer %w", err)
	}
	go kafka.Consume(consumerCtx, consumer, handler.NewConsumer(mailSvc.Deliver, log), kafka.NotificationsTopic)

	h := handler.New(catalogSvc, borrowSvc, statsSvc, exportSvc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err = srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	consumerCancel()
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
