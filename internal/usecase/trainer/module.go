package trainer

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/ports"
)

// cacheKey формирует читаемый ключ ранжирования, например "47 × 53" или "47 × 53 [near_100,squaring]".
// Порядок и повторы в списке разрешённых методов на результат не влияют.
func cacheKey(num1, num2 int64, allowed []domain.MethodName) string {
	key := strconv.FormatInt(num1, 10) + " × " + strconv.FormatInt(num2, 10)
	if len(allowed) == 0 {
		return key
	}
	names := make([]string, 0, len(allowed))
	for _, m := range allowed {
		names = append(names, string(m))
	}
	slices.Sort(names)
	names = slices.Compact(names)
	return key + " [" + strings.Join(names, ",") + "]"
}

var _ ports.ITrainerUseCase = (*UseCase)(nil)

// UseCase — бизнес-логика тренажёра.
type UseCase struct {
	selector  ports.IMethodSelector
	generator ports.IProblemGenerator
	repo      ports.IProblemRepository
	cache     ports.IRankingCache
	broker    ports.IProducer
	analytics ports.ISelectionAnalytics
	flight    singleflight.Group
	log       *slog.Logger
}

// New создаёт юзкейс тренажёра.
func New(
	selector ports.IMethodSelector,
	generator ports.IProblemGenerator,
	repo ports.IProblemRepository,
	cache ports.IRankingCache,
	broker ports.IProducer,
	analytics ports.ISelectionAnalytics,
	log *slog.Logger,
) *UseCase {
	return &UseCase{
		selector:  selector,
		generator: generator,
		repo:      repo,
		cache:     cache,
		broker:    broker,
		analytics: analytics,
		log:       log,
	}
}
