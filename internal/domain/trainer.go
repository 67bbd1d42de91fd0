package domain

import "time"

// SolvedProblem — запись о решённой задаче (что предложил движок).
type SolvedProblem struct {
	ID            int
	Num1          int64
	Num2          int64
	Answer        int64
	OptimalMethod MethodName
	CostScore     float64
	QualityScore  float64
	Alternatives  []MethodName
	Timestamp     time.Time
}

// Attempt — попытка ученика решить задачу выбранным методом.
type Attempt struct {
	ID        string
	Num1      int64
	Num2      int64
	Method    MethodName
	Answer    int64
	Correct   bool
	ElapsedMs int64
	Timestamp time.Time
}

// MethodStats — агрегаты по методу: число попыток, точность, среднее время.
type MethodStats struct {
	Method        MethodName
	Attempts      int64
	Accuracy      float64
	AverageTimeMs float64
}

// SelectionEvent — событие о выборе метода, уходит в брокер и дальше в аналитику.
type SelectionEvent struct {
	Num1           int64        `json:"num1"`
	Num2           int64        `json:"num2"`
	Answer         int64        `json:"answer"`
	OptimalMethod  MethodName   `json:"optimal_method"`
	CompositeScore float64      `json:"composite_score"`
	Alternatives   []MethodName `json:"alternatives"`
	Timestamp      time.Time    `json:"timestamp"`
}

// Problem — пара чисел для тренировки, подобранная под метод.
type Problem struct {
	Num1   int64
	Num2   int64
	Method MethodName
}
