package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/infrastructure/redis"
)

// setupRedisCache подключается к тестовому Redis и очищает его.
func setupRedisCache(t *testing.T, ttl time.Duration) (*redis.Cache, *redis.Client) {
	t.Helper()

	cfg := &redis.Config{
		Host:      stack.Redis.Host,
		Port:      stack.Redis.Port,
		Password:  "",
		DB:        0,
		KeyPrefix: "ranking:",
		TTL:       ttl,
	}
	client, err := redis.New(cfg)
	require.NoError(t, err, "не удалось подключиться к Redis")

	// Очищаем Redis перед каждым тестом
	err = client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "не удалось очистить Redis")

	t.Cleanup(func() {
		client.Close()
	})

	return redis.NewCache(client, cfg, newTestLogger()), client
}

// sampleRanking — ранжирование для 47 × 53 с деревом шагов.
func sampleRanking() *domain.MethodRanking {
	return &domain.MethodRanking{
		Optimal: domain.RankedMethod{
			Method: domain.MethodDifferenceOfSquares,
			Solution: &domain.Solution{
				Method:        domain.MethodDifferenceOfSquares,
				OptimalReason: "Both numbers sit 3 away from 50",
				Steps: []domain.Step{
					{Expression: "(47 + 53) / 2", Result: 50, Explanation: "Midpoint"},
					{Expression: "50 × 50", Result: 2500, Explanation: "Square the midpoint", Depth: 0},
					{Expression: "2500 - 9", Result: 2491, Explanation: "Subtract the square of the distance"},
				},
				Validated: true,
			},
			CostScore:    1.1,
			QualityScore: 0.95,
		},
		Alternatives: []domain.Alternative{{
			RankedMethod: domain.RankedMethod{
				Method:       domain.MethodDistributive,
				CostScore:    2.4,
				QualityScore: 0.6,
			},
			WhyNotOptimal: "Distributive requires more steps.",
		}},
		ComparisonSummary: "Difference of Squares is the best fit for 47 × 53.",
	}
}

// =============================================================================
// Тесты Redis кэша ранжирований
// =============================================================================

func TestRedisCache_SetAndGet(t *testing.T) {
	skipShort(t)

	cache, _ := setupRedisCache(t, 0)
	ctx := context.Background()

	want := sampleRanking()
	err := cache.Set(ctx, "47 × 53", want)
	require.NoError(t, err, "Set должен успешно сохранить")

	got, found, err := cache.Get(ctx, "47 × 53")
	require.NoError(t, err, "Get должен успешно получить")
	assert.True(t, found, "ключ должен быть найден")
	assert.Equal(t, want, got, "ранжирование должно пережить JSON без потерь")
	assert.Equal(t, int64(2491), got.Answer())
}

func TestRedisCache_Get_NotFound(t *testing.T) {
	skipShort(t)

	cache, _ := setupRedisCache(t, 0)

	got, found, err := cache.Get(context.Background(), "1 × 1")
	require.NoError(t, err, "Get несуществующего ключа не должен возвращать ошибку")
	assert.False(t, found, "ключ не должен быть найден")
	assert.Nil(t, got)
}

func TestRedisCache_Overwrite(t *testing.T) {
	skipShort(t)

	cache, _ := setupRedisCache(t, 0)
	ctx := context.Background()

	first := sampleRanking()
	require.NoError(t, cache.Set(ctx, "47 × 53", first))

	second := sampleRanking()
	second.ComparisonSummary = "updated"
	require.NoError(t, cache.Set(ctx, "47 × 53", second))

	got, found, err := cache.Get(ctx, "47 × 53")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "updated", got.ComparisonSummary, "значение должно быть перезаписано")
}

func TestRedisCache_PrefixAndTTL(t *testing.T) {
	skipShort(t)

	cache, client := setupRedisCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "24 × 35 [factorization]", sampleRanking()))

	// Ключ хранится с префиксом
	n, err := client.Exists(ctx, "ranking:24 × 35 [factorization]").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ttl, err := client.TTL(ctx, "ranking:24 × 35 [factorization]").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0), "у ключа должен быть срок жизни")
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestRedisCache_CorruptedValue(t *testing.T) {
	skipShort(t)

	cache, client := setupRedisCache(t, 0)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "ranking:bad", "not json", 0).Err())

	_, found, err := cache.Get(ctx, "bad")
	assert.Error(t, err, "битое значение должно вернуть ошибку декодирования")
	assert.False(t, found)
}
