// Package integration содержит интеграционные тесты с реальной инфраструктурой (PostgreSQL, Redis, MongoDB, ClickHouse).
// Тесты используют testcontainers для поднятия Docker-контейнеров.
//
// Запуск:
//
//	go test ./tests/integration/... -v
//
// Пропуск (только юнит-тесты):
//
//	go test ./... -short
package integration

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/bernhaaard/mental-math-trainer-sub000/tests/integration/testutil"
)

// stack — контейнеры, поднимаются один раз для всех тестов пакета.
var stack *testutil.Stack

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// TestMain поднимает контейнеры перед всеми тестами и останавливает после.
// В short-режиме контейнеры не поднимаются, тесты сами себя пропускают.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("🚀 Поднимаем тестовые контейнеры...")
	var err error
	stack, err = testutil.StartStack(ctx)
	if err != nil {
		log.Fatalf("❌ Не удалось поднять контейнеры: %v", err)
	}

	log.Println("🧪 Запускаем тесты...")
	code := m.Run()

	log.Println("🧹 Останавливаем контейнеры...")
	if err := stack.Terminate(context.Background()); err != nil {
		log.Printf("⚠️  Ошибка остановки контейнеров: %v", err)
	}

	log.Println("✅ Готово")
	os.Exit(code)
}

// skipShort пропускает интеграционный тест в short-режиме.
func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}
}
