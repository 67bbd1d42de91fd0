package validator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
)

// ErrUnsafeExpression — в выражении есть что-то кроме чисел, скобок и арифметики.
var ErrUnsafeExpression = errors.New("unsafe expression")

// Замены типографских символов на операторы expr.
var normalizer = strings.NewReplacer(
	"×", "*",
	"·", "*",
	"−", "-",
	"²", "^2",
	"³", "^3",
)

// normalize переводит выражение шага в синтаксис expr и проверяет алфавит.
func normalize(expression string) (string, error) {
	src := normalizer.Replace(expression)
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("%w: empty", ErrUnsafeExpression)
	}
	for _, r := range src {
		switch {
		case r >= '0' && r <= '9':
		case strings.ContainsRune("+-*^() ", r):
		default:
			return "", fmt.Errorf("%w: %q in %q", ErrUnsafeExpression, r, expression)
		}
	}
	return src, nil
}

// Evaluate вычисляет целочисленное выражение шага ("(50 - 3) × (50 + 3)", "70² + 9").
func Evaluate(expression string) (int64, error) {
	src, err := normalize(expression)
	if err != nil {
		return 0, err
	}
	out, err := expr.Eval(src, nil)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", expression, err)
	}
	switch v := out.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		// степень в expr всегда float64; в наших пределах (≤ 2^53) значение точное
		if math.IsInf(v, 0) || math.IsNaN(v) || v != math.Trunc(v) || math.Abs(v) > float64(1<<53) {
			return 0, fmt.Errorf("evaluate %q: non-integral result %v", expression, v)
		}
		return int64(v), nil
	default:
		return 0, fmt.Errorf("evaluate %q: unexpected result type %T", expression, out)
	}
}
