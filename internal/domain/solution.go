package domain

// Solution — полный проверенный вывод одного метода. После построения не меняется.
type Solution struct {
	Method           MethodName
	OptimalReason    string
	Steps            []Step
	Validated        bool
	ValidationErrors []string
}

// FinalResult возвращает результат последнего шага верхнего уровня.
func (s *Solution) FinalResult() (int64, bool) {
	if s == nil || len(s.Steps) == 0 {
		return 0, false
	}
	return s.Steps[len(s.Steps)-1].Result, true
}

// RankedMethod — метод с решением и оценками.
type RankedMethod struct {
	Method       MethodName
	Solution     *Solution
	CostScore    float64
	QualityScore float64
}

// Alternative — неоптимальный метод и объяснение, почему он проиграл.
type Alternative struct {
	RankedMethod
	WhyNotOptimal string
}

// MethodRanking — результат выбора: оптимальный метод, до двух альтернатив и сводка.
type MethodRanking struct {
	Optimal           RankedMethod
	Alternatives      []Alternative
	ComparisonSummary string
}

// Answer возвращает итоговый ответ оптимального решения.
func (r *MethodRanking) Answer() int64 {
	v, _ := r.Optimal.Solution.FinalResult()
	return v
}

// FactorPair — разложение числа на два множителя с оценкой удобства (меньше — удобнее).
type FactorPair struct {
	Factor1 int64
	Factor2 int64
	Score   float64
}
