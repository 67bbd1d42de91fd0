package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/click"
)

// setupClickWriter подключается к тестовому ClickHouse и создаёт таблицу.
func setupClickWriter(t *testing.T) (*click.SelectionWriter, *click.Client) {
	t.Helper()

	ctx := context.Background()

	client, err := click.New(ctx, &click.Config{
		Host:     stack.ClickHouse.Host,
		Port:     stack.ClickHouse.Port,
		Database: stack.ClickHouse.Database,
		Username: stack.ClickHouse.User,
		Password: stack.ClickHouse.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewSelectionWriter(client)

	err = writer.EnsureTable(ctx)
	require.NoError(t, err, "не удалось создать таблицу")

	// Очищаем таблицу перед тестом
	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.method_selections")
	require.NoError(t, err, "не удалось очистить таблицу")

	t.Cleanup(func() {
		client.Close()
	})

	return writer, client
}

// =============================================================================
// Тест ClickHouse writer
// =============================================================================

func TestClickWriter_WriteSelection(t *testing.T) {
	skipShort(t)

	writer, client := setupClickWriter(t)
	ctx := context.Background()

	ev := domain.SelectionEvent{
		Num1:           97,
		Num2:           103,
		Answer:         9991,
		OptimalMethod:  domain.MethodNear100,
		CompositeScore: 0.74,
		Alternatives:   []domain.MethodName{domain.MethodDifferenceOfSquares, domain.MethodDistributive},
		Timestamp:      time.Now(),
	}

	err := writer.WriteSelection(ctx, ev)
	require.NoError(t, err, "WriteSelection должен успешно записать")

	var (
		count uint64
		alts  []string
	)
	err = client.DB().QueryRowContext(ctx,
		"SELECT count(), any(alternatives) FROM default.method_selections").Scan(&count, &alts)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
	assert.Equal(t, []string{"difference_of_squares", "distributive"}, alts)
}

func TestClickWriter_SelectionCounts(t *testing.T) {
	skipShort(t)

	writer, _ := setupClickWriter(t)
	ctx := context.Background()

	events := []domain.SelectionEvent{
		{Num1: 97, Num2: 103, Answer: 9991, OptimalMethod: domain.MethodNear100},
		{Num1: 96, Num2: 98, Answer: 9408, OptimalMethod: domain.MethodNear100},
		{Num1: 47, Num2: 53, Answer: 2491, OptimalMethod: domain.MethodDifferenceOfSquares},
		{Num1: 35, Num2: 35, Answer: 1225, OptimalMethod: domain.MethodSquaringEndingIn5},
	}
	for _, ev := range events {
		ev.Timestamp = time.Now()
		require.NoError(t, writer.WriteSelection(ctx, ev))
	}

	counts, err := writer.SelectionCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []click.MethodCount{
		{Method: domain.MethodNear100, Count: 2},
		{Method: domain.MethodDifferenceOfSquares, Count: 1},
		{Method: domain.MethodSquaringEndingIn5, Count: 1},
	}, counts, "по убыванию частоты, при равенстве — по имени")
}
