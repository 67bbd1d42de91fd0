// Package validator проверяет арифметику шагов и целостность решений.
//
// Валидатор никогда не паникует и не возвращает ошибку: он собирает список нарушений,
// а что с ними делать, решает вызывающий (метод считает невалидное решение фатальным).
package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

// Result — итог проверки решения.
type Result struct {
	Valid  bool
	Errors []string
}

// ValidateStep пересчитывает выражение шага, рекурсивно проверяет подшаги и их сборку в результат родителя.
func ValidateStep(step domain.Step) []string {
	return validateStep(step, "step")
}

func validateStep(step domain.Step, path string) []string {
	var errs []string

	got, err := Evaluate(step.Expression)
	if err != nil {
		errs = append(errs, fmt.Sprintf("%s: %v", path, err))
	} else if got != step.Result {
		errs = append(errs, fmt.Sprintf("%s: %q evaluates to %d, claimed %d", path, step.Expression, got, step.Result))
	}

	if step.Depth < 0 || step.Depth > domain.MaxSubstepDepth {
		errs = append(errs, fmt.Sprintf("%s: depth %d outside [0, %d]", path, step.Depth, domain.MaxSubstepDepth))
	}
	if len(step.SubSteps) == 0 {
		return errs
	}

	for i, sub := range step.SubSteps {
		subPath := fmt.Sprintf("%s.%d", path, i+1)
		if sub.Depth != step.Depth+1 {
			errs = append(errs, fmt.Sprintf("%s: depth %d, parent depth %d", subPath, sub.Depth, step.Depth))
		}
		errs = append(errs, validateStep(sub, subPath)...)
	}

	op := step.Combine
	if op == domain.CombineNone {
		op = inferCombine(step.Explanation)
	}
	if terms := step.Terms(); len(terms) > 0 {
		if v := recombine(op, terms); v != step.Result {
			errs = append(errs, fmt.Sprintf("%s: sub-steps recombine (%s) to %d, claimed %d", path, op, v, step.Result))
		}
	}
	if last := step.SubSteps[len(step.SubSteps)-1]; last.Kind == domain.StepCombine && last.Result != step.Result {
		errs = append(errs, fmt.Sprintf("%s: recombination step gives %d, claimed %d", path, last.Result, step.Result))
	}
	return errs
}

// inferCombine угадывает оператор сборки по тексту пояснения: решает первое слово-оператор,
// так что "Add the partial products" — сумма. Без такого слова — сумма.
func inferCombine(explanation string) domain.Combine {
	words := strings.FieldsFunc(strings.ToLower(explanation), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		switch {
		case w == "add", w == "sum", w == "plus", w == "total":
			return domain.CombineSum
		case strings.HasPrefix(w, "subtract"), w == "minus", w == "difference":
			return domain.CombineDifference
		case strings.HasPrefix(w, "multipl"), strings.HasPrefix(w, "scale"), w == "product", w == "times":
			return domain.CombineProduct
		}
	}
	return domain.CombineSum
}

func recombine(op domain.Combine, terms []domain.Step) int64 {
	switch op {
	case domain.CombineDifference:
		v := terms[0].Result
		for _, t := range terms[1:] {
			v -= t.Result
		}
		return v
	case domain.CombineProduct:
		v := int64(1)
		for _, t := range terms {
			v *= t.Result
		}
		return v
	default:
		var v int64
		for _, t := range terms {
			v += t.Result
		}
		return v
	}
}

// ValidateSolution проверяет все шаги и то, что последний шаг верхнего уровня равен num1 × num2.
func ValidateSolution(num1, num2 int64, solution *domain.Solution) Result {
	if solution == nil || len(solution.Steps) == 0 {
		return Result{Valid: false, Errors: []string{"solution has no steps"}}
	}
	var errs []string
	for i, step := range solution.Steps {
		path := fmt.Sprintf("step %d", i+1)
		if step.Depth != 0 {
			errs = append(errs, fmt.Sprintf("%s: top-level step has depth %d", path, step.Depth))
		}
		errs = append(errs, validateStep(step, path)...)
	}
	want := num1 * num2
	if final, _ := solution.FinalResult(); final != want {
		errs = append(errs, fmt.Sprintf("final result %d, expected %d × %d = %d", final, num1, num2, want))
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// CrossValidate проверяет, что все решения приходят к одному ответу, и что это num1 × num2.
func CrossValidate(num1, num2 int64, solutions []*domain.Solution) bool {
	want := num1 * num2
	for _, s := range solutions {
		got, ok := s.FinalResult()
		if !ok || got != want {
			return false
		}
	}
	return true
}

// FinalResults перечисляет ответы решений по методам — для текста ошибки кросс-проверки.
func FinalResults(solutions []*domain.Solution) []string {
	out := make([]string, 0, len(solutions))
	for _, s := range solutions {
		if s == nil {
			continue
		}
		got, ok := s.FinalResult()
		if !ok {
			out = append(out, fmt.Sprintf("%s: no steps", s.Method))
			continue
		}
		out = append(out, fmt.Sprintf("%s: %d", s.Method, got))
	}
	return out
}
