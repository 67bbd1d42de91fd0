package pg

import (
	"context"
	"log/slog"

	"github.com/lib/pq"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/ports"
)

var _ ports.IProblemRepository = (*ProblemRepo)(nil)

// ProblemRepo реализует ports.IProblemRepository для PostgreSQL.
type ProblemRepo struct {
	db  *DB
	log *slog.Logger
}

// NewProblemRepo возвращает репозиторий задач и попыток.
func NewProblemRepo(db *DB, log *slog.Logger) *ProblemRepo {
	return &ProblemRepo{db: db, log: log}
}

// SaveProblem сохраняет решённую задачу.
func (r *ProblemRepo) SaveProblem(ctx context.Context, p domain.SolvedProblem) error {
	alts := make([]string, 0, len(p.Alternatives))
	for _, m := range p.Alternatives {
		alts = append(alts, string(m))
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO problems (num1, num2, answer, optimal_method, cost_score, quality_score, alternatives, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.Num1, p.Num2, p.Answer, string(p.OptimalMethod), p.CostScore, p.QualityScore, pq.Array(alts), p.Timestamp)
	if err != nil {
		r.log.Debug("SaveProblem failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает решённые задачи (последние сначала).
func (r *ProblemRepo) GetHistory(ctx context.Context) ([]domain.SolvedProblem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, num1, num2, answer, optimal_method, cost_score, quality_score, alternatives, created_at
		 FROM problems ORDER BY created_at DESC, id DESC`)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.SolvedProblem
	for rows.Next() {
		var (
			p      domain.SolvedProblem
			method string
			alts   pq.StringArray
		)
		err := rows.Scan(&p.ID, &p.Num1, &p.Num2, &p.Answer, &method, &p.CostScore, &p.QualityScore, &alts, &p.Timestamp)
		if err != nil {
			return nil, err
		}
		p.OptimalMethod = domain.MethodName(method)
		for _, a := range alts {
			p.Alternatives = append(p.Alternatives, domain.MethodName(a))
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SaveAttempt сохраняет попытку ученика.
func (r *ProblemRepo) SaveAttempt(ctx context.Context, a domain.Attempt) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (id, num1, num2, method, answer, correct, elapsed_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.Num1, a.Num2, string(a.Method), a.Answer, a.Correct, a.ElapsedMs, a.Timestamp)
	if err != nil {
		r.log.Debug("SaveAttempt failed", "error", err)
		return err
	}
	return nil
}

// MethodStats агрегирует попытки по методам: количество, доля верных, среднее время.
func (r *ProblemRepo) MethodStats(ctx context.Context) ([]domain.MethodStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT method,
		        COUNT(*),
		        AVG(CASE WHEN correct THEN 1.0 ELSE 0.0 END),
		        AVG(elapsed_ms)
		 FROM attempts GROUP BY method ORDER BY method`)
	if err != nil {
		r.log.Debug("MethodStats failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.MethodStats
	for rows.Next() {
		var (
			s      domain.MethodStats
			method string
		)
		if err := rows.Scan(&method, &s.Attempts, &s.Accuracy, &s.AverageTimeMs); err != nil {
			return nil, err
		}
		s.Method = domain.MethodName(method)
		list = append(list, s)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *ProblemRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
