package testutil

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"
)

// Stack — вся тестовая инфраструктура тренажёра: PostgreSQL, Redis, MongoDB, ClickHouse.
type Stack struct {
	Postgres   *PostgresContainer
	Redis      *RedisContainer
	Mongo      *MongoContainer
	ClickHouse *ClickHouseContainer
}

// StartStack поднимает контейнеры параллельно. При ошибке уже поднятые останавливаются.
func StartStack(ctx context.Context) (*Stack, error) {
	s := &Stack{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.Postgres, err = NewPostgresContainer(gctx)
		return err
	})
	g.Go(func() (err error) {
		s.Redis, err = NewRedisContainer(gctx)
		return err
	})
	g.Go(func() (err error) {
		s.Mongo, err = NewMongoContainer(gctx)
		return err
	})
	g.Go(func() (err error) {
		s.ClickHouse, err = NewClickHouseContainer(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Join(err, s.Terminate(context.Background()))
	}
	log.Printf("✅ PostgreSQL: %s:%s", s.Postgres.Host, s.Postgres.Port)
	log.Printf("✅ Redis: %s", s.Redis.Addr())
	log.Printf("✅ MongoDB: %s", s.Mongo.URI())
	log.Printf("✅ ClickHouse: %s:%s", s.ClickHouse.Host, s.ClickHouse.Port)
	return s, nil
}

// Terminate останавливает все поднятые контейнеры и собирает ошибки.
func (s *Stack) Terminate(ctx context.Context) error {
	var errs []error
	if s.Postgres != nil {
		errs = append(errs, s.Postgres.Terminate(ctx))
	}
	if s.Redis != nil {
		errs = append(errs, s.Redis.Terminate(ctx))
	}
	if s.Mongo != nil {
		errs = append(errs, s.Mongo.Terminate(ctx))
	}
	if s.ClickHouse != nil {
		errs = append(errs, s.ClickHouse.Terminate(ctx))
	}
	return errors.Join(errs...)
}
