package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const logFileName = "app.log"

// logWriter открывает файл app.log и возвращает writer в файл + stderr (и в файл, и в консоль).
// При ошибке открытия файла возвращает только stderr.
func logWriter() io.Writer {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// New возвращает логгер с текстовым выводом в файл app.log в корне проекта и уровнем Info.
func New() *slog.Logger {
	return NewWithLevel("info")
}

// NewWithLevel возвращает логгер сервиса (app.log + stderr) с заданным уровнем.
func NewWithLevel(level string) *slog.Logger {
	return NewWriter(logWriter(), level)
}

// NewWriter — логгер в произвольный writer. CLI пишет только в stderr, без app.log.
func NewWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel разбирает уровень (debug, info, warn, error) без учёта регистра; неизвестный — info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
