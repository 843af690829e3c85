package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/edu-licensing/licensing/config"
	"github.com/Astemirdum/edu-licensing/licensing/internal/events"
	"github.com/Astemirdum/edu-licensing/licensing/internal/handler"
	"github.com/Astemirdum/edu-licensing/licensing/internal/repository"
	"github.com/Astemirdum/edu-licensing/licensing/internal/server"
	"github.com/Astemirdum/edu-licensing/licensing/internal/service"
	"github.com/Astemirdum/edu-licensing/licensing/internal/storage"
	"github.com/Astemirdum/edu-licensing/licensing/migrations"
	"github.com/Astemirdum/edu-licensing/pkg/auth"
	"github.com/Astemirdum/edu-licensing/pkg/kafka"
	"github.com/Astemirdum/edu-licensing/pkg/logger"
	"github.com/Astemirdum/edu-licensing/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "licensing")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	store, err := storage.New(ctx, cfg.MinIO, log)
	if err != nil {
		log.Fatal("storage init", zap.Error(err))
	}

	publisher := newPublisher(cfg.Kafka, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("publisher close", zap.Error(err))
		}
	}()

	tokens := auth.NewTokens(cfg.Auth)
	h := handler.New(
		service.NewLicense(repo, publisher, log),
		service.NewAuth(repo, tokens, log),
		service.NewDirectory(repo, log),
		service.NewCatalog(repo, store, log),
		tokens,
		log,
	)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}

// newPublisher falls back to dropping events when no brokers are configured or reachable.
func newPublisher(cfg kafka.Config, log *zap.Logger) events.Publisher {
	if !cfg.Enabled() {
		log.Warn("kafka is not configured, batch events are not published")
		return events.NopPublisher{}
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		log.Error("kafka.NewProducer, batch events are not published", zap.Error(err))
		return events.NopPublisher{}
	}
	return events.NewPublisher(producer, kafka.LicenseBatchTopic, log)
}
