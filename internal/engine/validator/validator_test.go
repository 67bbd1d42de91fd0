package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expression string
		want       int64
	}{
		{"6 × 7", 42},
		{"(50 - 3) × (50 + 3)", 2491},
		{"2500 − 9", 2491},
		{"70² + 2 · 70 · 3 + 3²", 5329},
		{"100 × ((-3) + 3)", 0},
		{"-1 × 2491", -2491},
		{"10000 + 0 - 9", 9991},
		{"12345678", 12345678},
	}
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			got, err := Evaluate(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_RejectsUnsafeInput(t *testing.T) {
	for _, expression := range []string{"", "   ", "len(\"abc\")", "1 / 2", "os.Exit(1)", "2 ** 3 && true"} {
		_, err := Evaluate(expression)
		assert.True(t, errors.Is(err, ErrUnsafeExpression), "%q", expression)
	}
}

func TestEvaluate_MalformedExpression(t *testing.T) {
	_, err := Evaluate("(2 + 3")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsafeExpression))
}

func TestValidateStep(t *testing.T) {
	leaf := func(expr string, result int64, depth int, kind domain.StepKind) domain.Step {
		return domain.Step{Expression: expr, Result: result, Depth: depth, Kind: kind}
	}

	t.Run("верный лист", func(t *testing.T) {
		assert.Empty(t, ValidateStep(leaf("6 × 7", 42, 0, domain.StepPlain)))
	})

	t.Run("неверный результат", func(t *testing.T) {
		errs := ValidateStep(leaf("6 × 7", 43, 0, domain.StepPlain))
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "claimed 43")
	})

	t.Run("сборка по явному оператору", func(t *testing.T) {
		step := domain.Step{
			Expression: "47 × 28",
			Result:     1316,
			Combine:    domain.CombineDifference,
			SubSteps: []domain.Step{
				leaf("50 - 3", 47, 1, domain.StepPartition),
				leaf("50 × 28", 1400, 1, domain.StepTerm),
				leaf("3 × 28", 84, 1, domain.StepTerm),
				leaf("1400 - 84", 1316, 1, domain.StepCombine),
			},
		}
		assert.Empty(t, ValidateStep(step))
	})

	t.Run("оператор из пояснения", func(t *testing.T) {
		step := domain.Step{
			Expression:  "47 × 28",
			Result:      1316,
			Explanation: "Subtract the partial products",
			SubSteps: []domain.Step{
				leaf("50 × 28", 1400, 1, domain.StepTerm),
				leaf("3 × 28", 84, 1, domain.StepTerm),
			},
		}
		assert.Empty(t, ValidateStep(step))

		step.Explanation = "Add the partial products"
		errs := ValidateStep(step)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "recombine")
	})

	t.Run("неверная глубина подшага", func(t *testing.T) {
		step := domain.Step{
			Expression: "12 × 7",
			Result:     84,
			SubSteps: []domain.Step{
				leaf("10 × 7", 70, 2, domain.StepTerm),
				leaf("2 × 7", 14, 1, domain.StepTerm),
			},
		}
		errs := ValidateStep(step)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "parent depth 0")
	})

	t.Run("глубина вне предела", func(t *testing.T) {
		errs := ValidateStep(leaf("2 × 3", 6, domain.MaxSubstepDepth+1, domain.StepPlain))
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "outside")
	})

	t.Run("последний шаг сборки не сходится", func(t *testing.T) {
		step := domain.Step{
			Expression: "12 × 7",
			Result:     84,
			Combine:    domain.CombineSum,
			SubSteps: []domain.Step{
				leaf("10 × 7", 70, 1, domain.StepTerm),
				leaf("2 × 7", 14, 1, domain.StepTerm),
				leaf("70 + 15", 85, 1, domain.StepCombine),
			},
		}
		errs := ValidateStep(step)
		assert.Len(t, errs, 1)
	})
}

func TestInferCombine(t *testing.T) {
	assert.Equal(t, domain.CombineDifference, inferCombine("Subtract the correction"))
	assert.Equal(t, domain.CombineDifference, inferCombine("Take the difference"))
	assert.Equal(t, domain.CombineProduct, inferCombine("Scale back up"))
	assert.Equal(t, domain.CombineProduct, inferCombine("Multiply by the remaining factor"))
	assert.Equal(t, domain.CombineSum, inferCombine("Add the partial products"))
	assert.Equal(t, domain.CombineDifference, inferCombine("Subtract the partial products"))
	assert.Equal(t, domain.CombineProduct, inferCombine("Take the product of both halves"))
	assert.Equal(t, domain.CombineSum, inferCombine("Sum up: 2,500 + 21"))
	assert.Equal(t, domain.CombineSum, inferCombine(""))
}

func TestValidateStep_NarrativeCombine(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		explanation string
		terms       [2]string
		result      int64
	}{
		{"сумма частичных произведений", "12 × 7", "Add the partial products", [2]string{"10 × 7", "2 × 7"}, 84},
		{"разность частичных произведений", "13 × 19", "Subtract the partial products", [2]string{"13 × 20", "13 × 1"}, 247},
		{"масштаб", "12 × 100", "Scale back up", [2]string{"12", "100"}, 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := Evaluate(tt.terms[0])
			require.NoError(t, err)
			second, err := Evaluate(tt.terms[1])
			require.NoError(t, err)

			step := domain.Step{
				Expression:  tt.expression,
				Result:      tt.result,
				Explanation: tt.explanation,
				SubSteps: []domain.Step{
					{Expression: tt.terms[0], Result: first, Depth: 1, Kind: domain.StepTerm},
					{Expression: tt.terms[1], Result: second, Depth: 1, Kind: domain.StepTerm},
				},
			}
			assert.Empty(t, ValidateStep(step))
		})
	}
}

func TestValidateSolution(t *testing.T) {
	sol := &domain.Solution{
		Method: domain.MethodDifferenceOfSquares,
		Steps: []domain.Step{
			{Expression: "(50 - 3) × (50 + 3)", Result: 2491},
			{Expression: "50 × 50", Result: 2500, Kind: domain.StepTerm},
			{Expression: "3 × 3", Result: 9, Kind: domain.StepTerm},
			{Expression: "2500 - 9", Result: 2491, Kind: domain.StepCombine},
		},
	}
	res := ValidateSolution(47, 53, sol)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)

	res = ValidateSolution(47, 54, sol)
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "expected 47 × 54")

	res = ValidateSolution(1, 1, &domain.Solution{})
	assert.False(t, res.Valid)

	sol.Steps[0].Depth = 1
	res = ValidateSolution(47, 53, sol)
	assert.False(t, res.Valid)
}

func TestCrossValidate(t *testing.T) {
	mk := func(m domain.MethodName, r int64) *domain.Solution {
		return &domain.Solution{Method: m, Steps: []domain.Step{{Result: r}}}
	}
	agree := []*domain.Solution{mk(domain.MethodDistributive, 2491), mk(domain.MethodDifferenceOfSquares, 2491)}
	assert.True(t, CrossValidate(47, 53, agree))
	assert.True(t, CrossValidate(47, 53, nil))

	disagree := []*domain.Solution{mk(domain.MethodDistributive, 2491), mk(domain.MethodDifferenceOfSquares, 2492)}
	assert.False(t, CrossValidate(47, 53, disagree))
	assert.Equal(t, []string{"distributive: 2491", "difference_of_squares: 2492"}, FinalResults(disagree))

	assert.False(t, CrossValidate(47, 53, []*domain.Solution{{Method: domain.MethodSquaring}}))
}
