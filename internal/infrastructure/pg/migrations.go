package pg

import (
	"context"
	"fmt"
)

const createProblemsTable = `
CREATE TABLE IF NOT EXISTS problems (
	id             SERIAL PRIMARY KEY,
	num1           BIGINT NOT NULL,
	num2           BIGINT NOT NULL,
	answer         BIGINT NOT NULL,
	optimal_method VARCHAR(32) NOT NULL,
	cost_score     DOUBLE PRECISION NOT NULL,
	quality_score  DOUBLE PRECISION NOT NULL,
	alternatives   TEXT[] NOT NULL DEFAULT '{}',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

const createAttemptsTable = `
CREATE TABLE IF NOT EXISTS attempts (
	id         UUID PRIMARY KEY,
	num1       BIGINT NOT NULL,
	num2       BIGINT NOT NULL,
	method     VARCHAR(32) NOT NULL,
	answer     BIGINT NOT NULL,
	correct    BOOLEAN NOT NULL,
	elapsed_ms BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS attempts_method_idx ON attempts (method);
`

// Migrate создаёт таблицы problems и attempts, если их ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	for _, q := range []string{createProblemsTable, createAttemptsTable} {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("pg migrate: %w", err)
		}
	}
	return nil
}
