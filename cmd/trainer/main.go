// Сервис тренажёра: HTTP и gRPC API, хранилище, кэш, события выбора метода.
package main

import (
	"os"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/app"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/pkg/logger"
)

const (
	exitConfig = 2
	exitRun    = 1
)

func main() {
	log := logger.NewWriter(os.Stderr, os.Getenv(app.AppName+"_LOG_LEVEL"))

	cfg, err := app.LoadCfg()
	if err != nil {
		log.Error("config load failed", "error", err)
		os.Exit(exitConfig)
	}

	if err := app.New(cfg).Run(); err != nil {
		log.Error("trainer stopped", "error", err, "storage", cfg.Storage)
		os.Exit(exitRun)
	}
}
