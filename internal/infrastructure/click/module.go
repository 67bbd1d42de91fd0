package click

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Config — подключение к ClickHouse по нативному протоколу. Переменные: CALCULATOR_CLICKHOUSE_*.
type Config struct {
	Host        string        `envconfig:"HOST" default:"localhost"`
	Port        string        `envconfig:"PORT" default:"9000"`
	Database    string        `envconfig:"DATABASE" default:"default"`
	Username    string        `envconfig:"USERNAME" default:"default"`
	Password    string        `envconfig:"PASSWORD" default:""`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	Compress    bool          `envconfig:"COMPRESS" default:"true"`
}

// Addr — "host:port".
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *Config) options() *clickhouse.Options {
	opts := &clickhouse.Options{
		Addr: []string{c.Addr()},
		Auth: clickhouse.Auth{
			Database: c.Database,
			Username: c.Username,
			Password: c.Password,
		},
		DialTimeout: c.DialTimeout,
	}
	if c.Compress {
		opts.Compression = &clickhouse.Compression{Method: clickhouse.CompressionLZ4}
	}
	return opts
}

// Client — соединение с хранилищем аналитики выборов метода.
type Client struct {
	db *sql.DB
}

// New подключается и проверяет соединение. После использования вызови Close().
func New(ctx context.Context, cfg *Config) (*Client, error) {
	db := clickhouse.OpenDB(cfg.options())
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("clickhouse ping %s: %w", cfg.Addr(), err)
	}
	return &Client{db: db}, nil
}

func (c *Client) DB() *sql.DB { return c.db }

func (c *Client) Close() error { return c.db.Close() }

// Ping для readiness.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
