package trainer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/selector"
)

// Solve — проверяет ввод, затем кэш; при промахе выбирает метод, сохраняет задачу в БД и в кэш, публикует событие.
// Одновременные одинаковые запросы разделяют один расчёт.
func (u *UseCase) Solve(ctx context.Context, num1, num2 float64, allowed []domain.MethodName) (*domain.MethodRanking, error) {
	for _, m := range allowed {
		if !m.Known() {
			return nil, &domain.UnknownMethodError{Name: string(m)}
		}
	}
	a, b, err := selector.ValidateOperands(num1, num2)
	if err != nil {
		return nil, err
	}

	key := cacheKey(a, b, allowed)
	cached, found, err := u.cache.Get(ctx, key)
	switch {
	case err != nil:
		u.log.Warn("cache get", "key", key, "error", err)
	case found:
		rankingCacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	}
	rankingCacheLookups.WithLabelValues("miss").Inc()

	// общий вызов обслуживает всех ожидающих: отмена первого клиента не должна его обрывать
	flightCtx := context.WithoutCancel(ctx)
	v, err, shared := u.flight.Do(key, func() (any, error) {
		return u.solve(flightCtx, a, b, allowed, key)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		u.log.Debug("selection shared", "key", key)
	}
	return v.(*domain.MethodRanking), nil
}

func (u *UseCase) solve(ctx context.Context, a, b int64, allowed []domain.MethodName, key string) (*domain.MethodRanking, error) {
	start := time.Now()
	ranking, err := u.selector.SelectOptimalMethod(float64(a), float64(b), allowed...)
	selectionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, domain.ErrInternalDefect) {
			u.log.Error("selection defect", "key", key, "error", err)
		}
		return nil, err
	}
	selectionsTotal.WithLabelValues(string(ranking.Optimal.Method)).Inc()

	now := time.Now()
	problem := domain.SolvedProblem{
		Num1:          a,
		Num2:          b,
		Answer:        ranking.Answer(),
		OptimalMethod: ranking.Optimal.Method,
		CostScore:     ranking.Optimal.CostScore,
		QualityScore:  ranking.Optimal.QualityScore,
		Alternatives:  alternativeNames(ranking),
		Timestamp:     now,
	}
	if err := u.repo.SaveProblem(ctx, problem); err != nil {
		return nil, fmt.Errorf("save problem: %w", err)
	}
	u.log.Info("problem saved", "key", key, "method", problem.OptimalMethod, "answer", problem.Answer)

	if err := u.cache.Set(ctx, key, ranking); err != nil {
		return nil, fmt.Errorf("cache set: %w", err)
	}

	ev := domain.SelectionEvent{
		Num1:           a,
		Num2:           b,
		Answer:         problem.Answer,
		OptimalMethod:  problem.OptimalMethod,
		CompositeScore: selector.CompositeScore(problem.CostScore, problem.QualityScore),
		Alternatives:   problem.Alternatives,
		Timestamp:      now,
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	if err := u.broker.Send(ctx, []byte(key), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
	} else {
		u.log.Info("selection published", "key", key, "method", ev.OptimalMethod)
	}

	return ranking, nil
}

func alternativeNames(r *domain.MethodRanking) []domain.MethodName {
	out := make([]domain.MethodName, 0, len(r.Alternatives))
	for _, alt := range r.Alternatives {
		out = append(out, alt.Method)
	}
	return out
}

// History — решённые задачи, новые первыми (обвязка над репозиторием).
func (u *UseCase) History(ctx context.Context) ([]domain.SolvedProblem, error) {
	return u.repo.GetHistory(ctx)
}

// RecordAttempt проверяет ответ ученика, присваивает id и сохраняет попытку.
func (u *UseCase) RecordAttempt(ctx context.Context, a domain.Attempt) (*domain.Attempt, error) {
	if _, _, err := selector.ValidateOperands(float64(a.Num1), float64(a.Num2)); err != nil {
		return nil, err
	}
	if !a.Method.Known() {
		return nil, &domain.UnknownMethodError{Name: string(a.Method)}
	}
	if a.ElapsedMs < 0 {
		return nil, fmt.Errorf("%w: elapsed time %d ms is negative", domain.ErrInvalidInput, a.ElapsedMs)
	}

	a.ID = uuid.NewString()
	a.Correct = a.Answer == a.Num1*a.Num2
	a.Timestamp = time.Now()
	if err := u.repo.SaveAttempt(ctx, a); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}
	attemptsTotal.WithLabelValues(string(a.Method), strconv.FormatBool(a.Correct)).Inc()
	u.log.Info("attempt saved", "id", a.ID, "method", a.Method, "correct", a.Correct, "elapsed_ms", a.ElapsedMs)
	return &a, nil
}

// MethodStats — агрегаты попыток по методам.
func (u *UseCase) MethodStats(ctx context.Context) ([]domain.MethodStats, error) {
	return u.repo.MethodStats(ctx)
}

// Methods — каталог методов в порядке реестра.
func (u *UseCase) Methods() []domain.MethodInfo {
	return u.selector.Catalog()
}

// StudyContent — учебный текст метода.
func (u *UseCase) StudyContent(name domain.MethodName) (domain.StudyContent, error) {
	return u.selector.StudyContent(name)
}

// GenerateProblem подбирает задачу под метод; пустое имя — любой метод.
func (u *UseCase) GenerateProblem(ctx context.Context, name domain.MethodName) (domain.Problem, error) {
	if name != "" && !name.Known() {
		return domain.Problem{}, &domain.UnknownMethodError{Name: string(name)}
	}
	p, err := u.generator.Generate(name)
	if err != nil {
		return domain.Problem{}, err
	}
	u.log.Debug("problem generated", "method", p.Method, "num1", p.Num1, "num2", p.Num2)
	return p, nil
}

// HandleSelectionEvent вызывается консьюмером при получении сообщения из топика selections (часть ITrainerUseCase).
func (u *UseCase) HandleSelectionEvent(ctx context.Context, ev domain.SelectionEvent) error {
	if err := u.analytics.WriteSelection(ctx, ev); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("selection stored to click", "num1", ev.Num1, "num2", ev.Num2, "method", ev.OptimalMethod)

	return nil
}
