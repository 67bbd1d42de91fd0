package app

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "github.com/bernhaaard/mental-math-trainer-sub000/internal/api/grpc"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/api/http"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/selector"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/click"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/kafka"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/mongo"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/pg"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/redis"
)

const AppName = "CALCULATOR"

// Хранилища задач и попыток (CALCULATOR_STORAGE).
const (
	StoragePostgres = "pg"
	StorageMongo    = "mongo"
)

// EngineConfig — настройки движка выбора. Переменные: CALCULATOR_ENGINE_*.
type EngineConfig struct {
	selector.Thresholds
	FactorCacheSize int `envconfig:"FACTOR_CACHE_SIZE" default:"1000"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	Server     http.ServerConfig `envconfig:"SERVER"`
	Grpc       apigrpc.Config    `envconfig:"GRPC"`
	Storage    string            `envconfig:"STORAGE" default:"pg"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
	Engine     EngineConfig      `envconfig:"ENGINE"`
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
}

// Validate проверяет значения, которые envconfig не может проверить сам.
func (c Config) Validate() error {
	switch c.Storage {
	case StoragePostgres, StorageMongo:
	default:
		return fmt.Errorf("config: unknown storage %q (want %q or %q)", c.Storage, StoragePostgres, StorageMongo)
	}
	if c.Engine.FactorCacheSize <= 0 {
		return fmt.Errorf("config: factor cache size must be positive, got %d", c.Engine.FactorCacheSize)
	}
	if c.Engine.SignificantCostGap < c.Engine.ModerateCostGap {
		return fmt.Errorf("config: significant cost gap %v is below moderate gap %v",
			c.Engine.SignificantCostGap, c.Engine.ModerateCostGap)
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Переменные окружения приоритетнее значений из файла.
func LoadCfg(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
