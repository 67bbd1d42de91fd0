package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const defaultConnectTimeout = 5 * time.Second

// Config — подключение к PostgreSQL. Переменные: CALCULATOR_DB_*.
type Config struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5433"`
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASSWORD" default:"postgres"`
	DBName   string `envconfig:"NAME" default:"mentalcalc"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`

	// Пул: 0 — без ограничения.
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
	ConnectTimeout  time.Duration `envconfig:"CONNECT_TIMEOUT" default:"5s"`
}

// DSN — строка подключения для lib/pq.
func (c *Config) DSN() string {
	ssl := c.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, ssl)
}

// DB — пул соединений с задачами и попытками.
type DB struct {
	*sql.DB
}

// New открывает пул и ждёт первого успешного пинга не дольше ConnectTimeout.
func New(ctx context.Context, cfg *Config) (*DB, error) {
	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("pg open: %w", err)
	}
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("pg ping %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	return &DB{conn}, nil
}

// Ping для readiness.
func (db *DB) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}
