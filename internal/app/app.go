package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "github.com/bernhaaard/mental-math-trainer-sub000/internal/api/grpc"
	apihttp "github.com/bernhaaard/mental-math-trainer-sub000/internal/api/http"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/api/http/controllers/system"
	trainerctl "github.com/bernhaaard/mental-math-trainer-sub000/internal/api/http/controllers/trainer"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/generator"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/methods"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/selector"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/click"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/kafka"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/mongo"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/pg"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/redis"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/pkg/logger"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/ports"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/usecase/trainer"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (подключения поднимаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключается к хранилищу, Redis, Kafka и ClickHouse, собирает движок и use case,
// запускает консьюмера, gRPC и HTTP-серверы (блокирующий вызов до SIGINT/SIGTERM).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := a.openRepository(ctx, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()
	cache := redis.NewCache(rdb, &a.cfg.Redis, log)

	ch, err := click.New(ctx, &a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()
	analytics := click.NewSelectionWriter(ch)
	if err := analytics.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse table: %w", err)
	}

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	sel := selector.New(log, a.cfg.Engine.Thresholds, methods.NewFactorCache(a.cfg.Engine.FactorCacheSize))
	gen := generator.NewRandom(sel.Methods())
	uc := trainer.New(sel, gen, repo, cache, producer, analytics, log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("kafka consumer failed", "error", err)
		}
	}()

	grpcSrv := apigrpc.NewServer(a.cfg.Grpc.Addr(), uc, log)
	go func() {
		if err := grpcSrv.Start(); err != nil {
			log.Error("grpc server failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server, log)
	srv.AddController(
		system.New(repo, log),
		trainerctl.New(uc, log))

	log.Info("application started",
		"http", a.cfg.Server.Addr(),
		"grpc", a.cfg.Grpc.Addr(),
		"storage", a.cfg.Storage,
		"methods", len(sel.Methods()))

	if err := srv.Start(ctx); err != nil {
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return grpcSrv.Stop(shutdownCtx)
}

// openRepository подключает хранилище по CALCULATOR_STORAGE: PostgreSQL (с миграциями) или MongoDB.
func (a *App) openRepository(ctx context.Context, log *slog.Logger) (ports.IProblemRepository, func(), error) {
	switch a.cfg.Storage {
	case StorageMongo:
		client, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return mongo.NewProblemRepo(client, log), closeFn, nil
	default:
		db, err := pg.New(ctx, &a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewProblemRepo(db, log), func() { db.Close() }, nil
	}
}
