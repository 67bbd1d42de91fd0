package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// ISelectionAnalytics — запись событий выбора метода в хранилище для аналитики (например, ClickHouse).
type ISelectionAnalytics interface {
	WriteSelection(ctx context.Context, ev domain.SelectionEvent) error
}
