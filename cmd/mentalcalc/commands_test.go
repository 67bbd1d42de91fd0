package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolve(t *testing.T) {
	out, err := run(t, "solve", "97", "103")

	require.NoError(t, err)
	assert.Contains(t, out, "97 × 103 = 9991")
	assert.Contains(t, out, "★ ")
	assert.Contains(t, out, "is the best fit for 97 × 103")
}

func TestSolve_AllowList(t *testing.T) {
	out, err := run(t, "solve", "24", "35", "--allow", "distributive")

	require.NoError(t, err)
	assert.Contains(t, out, "★ Distributive")
	assert.Contains(t, out, "= 840")
	assert.Contains(t, out, "No other method applies to these numbers.")
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "solve", "1.5", "2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = run(t, "solve", "forty", "2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = run(t, "solve", "47", "53", "--allow", "magic")
	assert.ErrorIs(t, err, domain.ErrUnknownMethod)

	_, err = run(t, "solve", "47")
	assert.Error(t, err, "нужно ровно два числа")
}

func TestStudy(t *testing.T) {
	out, err := run(t, "study", "near_100")
	require.NoError(t, err)
	assert.Contains(t, out, "Both Near 100")
	assert.Contains(t, out, "When to use")

	_, err = run(t, "study", "magic")
	assert.ErrorIs(t, err, domain.ErrUnknownMethod)
}

func TestProblem_Seeded(t *testing.T) {
	first, err := run(t, "problem", "squaring", "--seed", "7")
	require.NoError(t, err)
	second, err := run(t, "problem", "squaring", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, first, second, "одинаковый seed — одинаковая задача")
	assert.Contains(t, first, "(Squaring)")
}

func TestMethods(t *testing.T) {
	out, err := run(t, "methods")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Distributive (distributive)")
	assert.Contains(t, out, "6. Near 100 (near_100)")
	assert.Contains(t, out, "both factors close to 100")
}
