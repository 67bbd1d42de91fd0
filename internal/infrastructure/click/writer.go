package click

import (
	"context"
	"fmt"
	"strings"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/ports"
)

const selectionsAnalyticsFull = "default.method_selections"

var _ ports.ISelectionAnalytics = (*SelectionWriter)(nil)

// SelectionWriter записывает события выбора метода в ClickHouse в формате, удобном для аналитики
// (GROUP BY optimal_method, распределение итоговых оценок по времени и т.д.).
type SelectionWriter struct {
	db *Client
}

// NewSelectionWriter создаёт писатель событий для аналитики.
func NewSelectionWriter(db *Client) *SelectionWriter {
	return &SelectionWriter{db: db}
}

// EnsureTable создаёт таблицу событий в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *SelectionWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			num1 Int64,
			num2 Int64,
			answer Int64,
			optimal_method LowCardinality(String),
			composite_score Float64,
			alternatives Array(String),
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, optimal_method)
		PARTITION BY toYYYYMM(created_at)`,
		selectionsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteSelection реализует ports.ISelectionAnalytics: пишет одно событие в ClickHouse.
func (w *SelectionWriter) WriteSelection(ctx context.Context, ev domain.SelectionEvent) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (num1, num2, answer, optimal_method, composite_score, alternatives, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		selectionsAnalyticsFull,
	)
	alts := make([]string, 0, len(ev.Alternatives))
	for _, m := range ev.Alternatives {
		alts = append(alts, string(m))
	}
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.Num1, ev.Num2, ev.Answer, string(ev.OptimalMethod), ev.CompositeScore, alts, ev.Timestamp)
	if err != nil {
		return fmt.Errorf("insert selection: %w", err)
	}
	return nil
}

// MethodCount — сколько раз метод был выбран оптимальным.
type MethodCount struct {
	Method domain.MethodName
	Count  uint64
}

// SelectionCounts — частота оптимальных методов, по убыванию.
func (w *SelectionWriter) SelectionCounts(ctx context.Context) ([]MethodCount, error) {
	rows, err := w.db.DB().QueryContext(ctx, fmt.Sprintf(
		"SELECT optimal_method, count() AS c FROM %s GROUP BY optimal_method ORDER BY c DESC, optimal_method",
		selectionsAnalyticsFull,
	))
	if err != nil {
		return nil, fmt.Errorf("select counts: %w", err)
	}
	defer rows.Close()
	var out []MethodCount
	for rows.Next() {
		var (
			method string
			mc     MethodCount
		)
		if err := rows.Scan(&method, &mc.Count); err != nil {
			return nil, err
		}
		mc.Method = domain.MethodName(strings.TrimSpace(method))
		out = append(out, mc)
	}
	return out, rows.Err()
}
