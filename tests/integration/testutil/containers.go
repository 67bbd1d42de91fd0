// Package testutil поднимает инфраструктуру тренажёра в Docker для интеграционных тестов.
package testutil

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage   = "postgres:16-alpine"
	redisImage      = "redis:7-alpine"
	mongoImage      = "mongo:7"
	clickhouseImage = "clickhouse/clickhouse-server:24-alpine"

	trainerUser     = "trainer"
	trainerPassword = "trainer"
	trainerDB       = "mentalcalc_test"
)

// Endpoint — адрес контейнера на хосте.
type Endpoint struct {
	Host string
	Port string
}

// Addr — "host:port".
func (e Endpoint) Addr() string { return net.JoinHostPort(e.Host, e.Port) }

func parseEndpoint(hostPort string) (Endpoint, error) {
	host, port, err := net.SplitHostPort(hostPort)
	if err != nil {
		return Endpoint{}, fmt.Errorf("parse endpoint %q: %w", hostPort, err)
	}
	return Endpoint{Host: host, Port: port}, nil
}

// endpointOf берёт адрес единственного открытого порта контейнера.
func endpointOf(ctx context.Context, c interface {
	Endpoint(context.Context, string) (string, error)
}) (Endpoint, error) {
	hostPort, err := c.Endpoint(ctx, "")
	if err != nil {
		return Endpoint{}, err
	}
	return parseEndpoint(hostPort)
}

// PostgresContainer — хранилище задач и попыток.
type PostgresContainer struct {
	*postgres.PostgresContainer
	Endpoint
	User     string
	Password string
	DBName   string
}

func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase(trainerDB),
		postgres.WithUsername(trainerUser),
		postgres.WithPassword(trainerPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres container: %w", err)
	}
	ep, err := endpointOf(ctx, container)
	if err != nil {
		return nil, fmt.Errorf("postgres endpoint: %w", terminateOnErr(ctx, container, err))
	}
	return &PostgresContainer{
		PostgresContainer: container,
		Endpoint:          ep,
		User:              trainerUser,
		Password:          trainerPassword,
		DBName:            trainerDB,
	}, nil
}

// DSN — строка подключения для lib/pq.
func (c *PostgresContainer) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName)
}

// RedisContainer — кэш ранжирований.
type RedisContainer struct {
	*redis.RedisContainer
	Endpoint
}

func NewRedisContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := redis.Run(ctx, redisImage,
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("redis container: %w", err)
	}
	ep, err := endpointOf(ctx, container)
	if err != nil {
		return nil, fmt.Errorf("redis endpoint: %w", terminateOnErr(ctx, container, err))
	}
	return &RedisContainer{RedisContainer: container, Endpoint: ep}, nil
}

// MongoContainer — альтернативное хранилище (STORAGE=mongo).
type MongoContainer struct {
	*mongodb.MongoDBContainer
	Endpoint
}

func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx, mongoImage,
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo container: %w", err)
	}
	ep, err := endpointOf(ctx, container)
	if err != nil {
		return nil, fmt.Errorf("mongo endpoint: %w", terminateOnErr(ctx, container, err))
	}
	return &MongoContainer{MongoDBContainer: container, Endpoint: ep}, nil
}

// URI — строка подключения для mongo-driver.
func (c *MongoContainer) URI() string {
	return "mongodb://" + c.Addr()
}

// ClickHouseContainer — аналитика выборов метода.
type ClickHouseContainer struct {
	*clickhouse.ClickHouseContainer
	Endpoint
	User     string
	Password string
	Database string
}

func NewClickHouseContainer(ctx context.Context) (*ClickHouseContainer, error) {
	// пользователь default без пароля, таблица method_selections в базе default
	const (
		user     = "default"
		password = ""
		database = "default"
	)

	container, err := clickhouse.Run(ctx, clickhouseImage,
		clickhouse.WithUsername(user),
		clickhouse.WithPassword(password),
		clickhouse.WithDatabase(database),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse container: %w", err)
	}
	// нативный протокол, не HTTP
	hostPort, err := container.ConnectionHost(ctx)
	if err != nil {
		return nil, fmt.Errorf("clickhouse endpoint: %w", terminateOnErr(ctx, container, err))
	}
	ep, err := parseEndpoint(hostPort)
	if err != nil {
		return nil, terminateOnErr(ctx, container, err)
	}
	return &ClickHouseContainer{
		ClickHouseContainer: container,
		Endpoint:            ep,
		User:                user,
		Password:            password,
		Database:            database,
	}, nil
}

// terminateOnErr останавливает контейнер, адрес которого не удалось получить.
func terminateOnErr(ctx context.Context, c testcontainers.Container, err error) error {
	if terr := c.Terminate(ctx); terr != nil {
		return fmt.Errorf("%w (terminate: %v)", err, terr)
	}
	return err
}
