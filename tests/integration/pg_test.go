package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/pg"
)

// setupPgDB подключается к тестовому PostgreSQL, накатывает миграции и очищает таблицы.
func setupPgDB(t *testing.T) *pg.DB {
	t.Helper()

	db, err := pg.New(context.Background(), &pg.Config{
		Host:     stack.Postgres.Host,
		Port:     stack.Postgres.Port,
		User:     stack.Postgres.User,
		Password: stack.Postgres.Password,
		DBName:   stack.Postgres.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось подключиться к PostgreSQL")

	ctx := context.Background()
	require.NoError(t, pg.Migrate(ctx, db), "не удалось применить миграции")

	// Повторный прогон миграций не должен падать
	require.NoError(t, pg.Migrate(ctx, db), "миграции должны быть идемпотентны")

	_, err = db.ExecContext(ctx, "TRUNCATE TABLE problems, attempts RESTART IDENTITY")
	require.NoError(t, err, "не удалось очистить таблицы")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// =============================================================================
// Тесты PostgreSQL репозитория
// =============================================================================

func TestPgRepo_SaveProblem(t *testing.T) {
	skipShort(t)

	db := setupPgDB(t)
	repo := pg.NewProblemRepo(db, newTestLogger())
	ctx := context.Background()

	p := domain.SolvedProblem{
		Num1:          97,
		Num2:          103,
		Answer:        9991,
		OptimalMethod: domain.MethodNear100,
		CostScore:     1.5,
		QualityScore:  0.9,
		Alternatives:  []domain.MethodName{domain.MethodDifferenceOfSquares, domain.MethodDistributive},
		Timestamp:     time.Now(),
	}

	err := repo.SaveProblem(ctx, p)
	require.NoError(t, err, "SaveProblem должен успешно сохранить")

	// Проверяем напрямую в БД
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM problems").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "в таблице должна быть 1 запись")
}

func TestPgRepo_GetHistory(t *testing.T) {
	skipShort(t)

	db := setupPgDB(t)
	repo := pg.NewProblemRepo(db, newTestLogger())
	ctx := context.Background()

	now := time.Now()
	problems := []domain.SolvedProblem{
		{Num1: 47, Num2: 53, Answer: 2491, OptimalMethod: domain.MethodDifferenceOfSquares, Timestamp: now.Add(-2 * time.Second)},
		{Num1: 97, Num2: 103, Answer: 9991, OptimalMethod: domain.MethodNear100, Timestamp: now.Add(-1 * time.Second)},
		{
			Num1: 35, Num2: 35, Answer: 1225, OptimalMethod: domain.MethodSquaringEndingIn5,
			Alternatives: []domain.MethodName{domain.MethodSquaring, domain.MethodSumToTen},
			Timestamp:    now,
		},
	}
	for _, p := range problems {
		require.NoError(t, repo.SaveProblem(ctx, p))
	}

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err, "GetHistory должен успешно вернуть данные")
	require.Len(t, history, 3, "должно быть 3 записи")

	// Последние сначала
	assert.Equal(t, int64(1225), history[0].Answer, "первая запись — самая новая")
	assert.Equal(t, int64(9991), history[1].Answer)
	assert.Equal(t, int64(2491), history[2].Answer, "последняя запись — самая старая")

	// Массив альтернатив восстанавливается в том же порядке
	assert.Equal(t, []domain.MethodName{domain.MethodSquaring, domain.MethodSumToTen}, history[0].Alternatives)
	assert.Empty(t, history[2].Alternatives)
	assert.Equal(t, domain.MethodSquaringEndingIn5, history[0].OptimalMethod)
	assert.WithinDuration(t, now, history[0].Timestamp, time.Millisecond)
	assert.NotZero(t, history[0].ID, "ID должен быть назначен")
}

func TestPgRepo_GetHistory_Empty(t *testing.T) {
	skipShort(t)

	db := setupPgDB(t)
	repo := pg.NewProblemRepo(db, newTestLogger())

	history, err := repo.GetHistory(context.Background())
	require.NoError(t, err, "GetHistory на пустой таблице не должен возвращать ошибку")
	assert.Empty(t, history, "история должна быть пустой")
}

func TestPgRepo_AttemptsAndStats(t *testing.T) {
	skipShort(t)

	db := setupPgDB(t)
	repo := pg.NewProblemRepo(db, newTestLogger())
	ctx := context.Background()

	attempts := []domain.Attempt{
		{Num1: 97, Num2: 103, Method: domain.MethodNear100, Answer: 9991, Correct: true, ElapsedMs: 1000},
		{Num1: 96, Num2: 104, Method: domain.MethodNear100, Answer: 9980, Correct: false, ElapsedMs: 3000},
		{Num1: 25, Num2: 25, Method: domain.MethodSquaring, Answer: 625, Correct: true, ElapsedMs: 500},
	}
	for _, a := range attempts {
		a.ID = uuid.NewString()
		a.Timestamp = time.Now()
		require.NoError(t, repo.SaveAttempt(ctx, a), "SaveAttempt должен успешно сохранить")
	}

	stats, err := repo.MethodStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2, "две группы: near_100 и squaring")

	assert.Equal(t, domain.MethodNear100, stats[0].Method)
	assert.Equal(t, int64(2), stats[0].Attempts)
	assert.InDelta(t, 0.5, stats[0].Accuracy, 1e-9)
	assert.InDelta(t, 2000.0, stats[0].AverageTimeMs, 1e-9)

	assert.Equal(t, domain.MethodSquaring, stats[1].Method)
	assert.Equal(t, int64(1), stats[1].Attempts)
	assert.InDelta(t, 1.0, stats[1].Accuracy, 1e-9)
	assert.InDelta(t, 500.0, stats[1].AverageTimeMs, 1e-9)
}

func TestPgRepo_SaveAttempt_DuplicateID(t *testing.T) {
	skipShort(t)

	db := setupPgDB(t)
	repo := pg.NewProblemRepo(db, newTestLogger())
	ctx := context.Background()

	a := domain.Attempt{ID: uuid.NewString(), Num1: 12, Num2: 13, Method: domain.MethodDistributive, Answer: 156, Correct: true, Timestamp: time.Now()}
	require.NoError(t, repo.SaveAttempt(ctx, a))
	assert.Error(t, repo.SaveAttempt(ctx, a), "повторный id должен нарушить первичный ключ")
}

func TestPgRepo_Ping(t *testing.T) {
	skipShort(t)

	db := setupPgDB(t)
	repo := pg.NewProblemRepo(db, newTestLogger())

	err := repo.Ping(context.Background())
	assert.NoError(t, err, "Ping должен успешно проверить соединение")
}
