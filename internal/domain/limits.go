package domain

// Границы входных данных и рекурсии.
const (
	// AbsoluteMaxValue — максимальный модуль одного операнда.
	AbsoluteMaxValue = 100_000_000
	// MaxSafeInteger — 2^53-1, наибольшее целое, точно представимое в float64.
	MaxSafeInteger = 1<<53 - 1
	// MaxSubstepDepth — предел вложенности подшагов.
	MaxSubstepDepth = 3
)
