package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Сентинелы для errors.Is. Конкретные ошибки ниже оборачивают их.
var (
	// ErrInvalidInput — операнды не прошли проверку. Ошибка пользователя, повтор с теми же числами бессмыслен.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternalDefect — нарушен инвариант движка (ошибка в арифметике метода или реестре).
	ErrInternalDefect = errors.New("internal defect")
	// ErrUnknownMethod — такого метода нет в реестре.
	ErrUnknownMethod = errors.New("unknown method")
)

// InputValidationError — отказ по входным данным, до запуска любого метода.
type InputValidationError struct {
	Num1   float64
	Num2   float64
	Value  float64
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input (%v, %v): %s: %v", e.Num1, e.Num2, e.Reason, e.Value)
}

func (e *InputValidationError) Unwrap() error { return ErrInvalidInput }

// DefectKind — разновидность внутреннего дефекта.
type DefectKind string

const (
	DefectInvalidSolution    DefectKind = "invalid_solution"
	DefectCrossValidation    DefectKind = "cross_validation"
	DefectNoApplicableMethod DefectKind = "no_applicable_method"
)

// DefectError — фатальная ошибка: движок сам себе противоречит. Логировать и падать, не показывать как ошибку ввода.
type DefectError struct {
	Kind    DefectKind
	Method  MethodName
	Num1    int64
	Num2    int64
	Details []string
}

func (e *DefectError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "internal defect %s for %d × %d", e.Kind, e.Num1, e.Num2)
	if e.Method != "" {
		fmt.Fprintf(&b, " (method %s)", e.Method)
	}
	if len(e.Details) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Details, "; "))
	}
	return b.String()
}

func (e *DefectError) Unwrap() error { return ErrInternalDefect }

// UnknownMethodError — имя метода не найдено.
type UnknownMethodError struct {
	Name string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownMethod, e.Name)
}

func (e *UnknownMethodError) Unwrap() error { return ErrUnknownMethod }
