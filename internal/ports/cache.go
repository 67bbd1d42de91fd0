package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// IRankingCache — кэш ранжирований. Ключ — пара чисел и список разрешённых методов.
// Ранжирование детерминировано, поэтому запись не устаревает по смыслу, только по TTL реализации.
type IRankingCache interface {
	Get(ctx context.Context, key string) (ranking *domain.MethodRanking, found bool, err error)
	Set(ctx context.Context, key string, ranking *domain.MethodRanking) error
}
