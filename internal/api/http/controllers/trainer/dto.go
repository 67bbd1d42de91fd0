package trainer

import (
	"time"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/selector"
)

// SolveRequest — запрос на выбор метода (POST /api/v1/solve).
type SolveRequest struct {
	Num1           float64  `json:"num1" binding:"required"`
	Num2           float64  `json:"num2" binding:"required"`
	AllowedMethods []string `json:"allowedMethods"`
}

// StepDTO — узел дерева шагов.
type StepDTO struct {
	Expression  string    `json:"expression"`
	Result      int64     `json:"result"`
	Explanation string    `json:"explanation"`
	Depth       int       `json:"depth"`
	SubSteps    []StepDTO `json:"subSteps,omitempty"`
}

// MethodResultDTO — метод с решением и оценками.
type MethodResultDTO struct {
	Method         string    `json:"method"`
	DisplayName    string    `json:"displayName"`
	CostScore      float64   `json:"costScore"`
	QualityScore   float64   `json:"qualityScore"`
	CompositeScore float64   `json:"compositeScore"`
	OptimalReason  string    `json:"optimalReason,omitempty"`
	Validated      bool      `json:"validated"`
	Steps          []StepDTO `json:"steps"`
}

// AlternativeDTO — альтернатива с объяснением проигрыша.
type AlternativeDTO struct {
	MethodResultDTO
	WhyNotOptimal string `json:"whyNotOptimal"`
}

// SolveResponse — ранжирование методов для пары чисел.
type SolveResponse struct {
	Num1              int64            `json:"num1"`
	Num2              int64            `json:"num2"`
	Answer            int64            `json:"answer"`
	Optimal           MethodResultDTO  `json:"optimal"`
	Alternatives      []AlternativeDTO `json:"alternatives"`
	ComparisonSummary string           `json:"comparisonSummary"`
}

// HistoryItem — одна запись в истории (GET /api/v1/history).
type HistoryItem struct {
	ID            int       `json:"id"`
	Num1          int64     `json:"num1"`
	Num2          int64     `json:"num2"`
	Answer        int64     `json:"answer"`
	OptimalMethod string    `json:"optimalMethod"`
	CostScore     float64   `json:"costScore"`
	QualityScore  float64   `json:"qualityScore"`
	Alternatives  []string  `json:"alternatives"`
	Timestamp     time.Time `json:"timestamp"`
}

// HistoryResponse — ответ со списком решённых задач.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// AttemptRequest — ответ ученика (POST /api/v1/attempts).
type AttemptRequest struct {
	Num1      int64  `json:"num1" binding:"required"`
	Num2      int64  `json:"num2" binding:"required"`
	Method    string `json:"method" binding:"required"`
	Answer    int64  `json:"answer"`
	ElapsedMs int64  `json:"elapsedMs" binding:"gte=0"`
}

// AttemptResponse — сохранённая попытка.
type AttemptResponse struct {
	ID        string    `json:"id"`
	Num1      int64     `json:"num1"`
	Num2      int64     `json:"num2"`
	Method    string    `json:"method"`
	Answer    int64     `json:"answer"`
	Correct   bool      `json:"correct"`
	ElapsedMs int64     `json:"elapsedMs"`
	Timestamp time.Time `json:"timestamp"`
}

// StatsItem — агрегаты по одному методу.
type StatsItem struct {
	Method        string  `json:"method"`
	Attempts      int64   `json:"attempts"`
	Accuracy      float64 `json:"accuracy"`
	AverageTimeMs float64 `json:"averageTimeMs"`
}

// StatsResponse — ответ GET /api/v1/stats.
type StatsResponse struct {
	Items []StatsItem `json:"items"`
}

// MethodItem — строка каталога методов.
type MethodItem struct {
	Name           string `json:"name"`
	DisplayName    string `json:"displayName"`
	Characteristic string `json:"characteristic"`
}

// MethodsResponse — каталог в порядке реестра.
type MethodsResponse struct {
	Items []MethodItem `json:"items"`
}

// StudyResponse — учебный материал по методу.
type StudyResponse struct {
	Method         string   `json:"method"`
	Title          string   `json:"title"`
	Introduction   string   `json:"introduction"`
	Foundation     string   `json:"foundation"`
	WhenToUse      []string `json:"whenToUse"`
	Walkthrough    []string `json:"walkthrough"`
	CommonMistakes []string `json:"commonMistakes"`
	Practice       []string `json:"practice"`
}

// ProblemResponse — задача для тренировки.
type ProblemResponse struct {
	Num1   int64  `json:"num1"`
	Num2   int64  `json:"num2"`
	Method string `json:"method"`
}

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toSteps(steps []domain.Step) []StepDTO {
	if len(steps) == 0 {
		return nil
	}
	out := make([]StepDTO, len(steps))
	for i, s := range steps {
		out[i] = StepDTO{
			Expression:  s.Expression,
			Result:      s.Result,
			Explanation: s.Explanation,
			Depth:       s.Depth,
			SubSteps:    toSteps(s.SubSteps),
		}
	}
	return out
}

func toMethodResult(m domain.RankedMethod) MethodResultDTO {
	dto := MethodResultDTO{
		Method:         string(m.Method),
		DisplayName:    m.Method.DisplayName(),
		CostScore:      m.CostScore,
		QualityScore:   m.QualityScore,
		CompositeScore: selector.CompositeScore(m.CostScore, m.QualityScore),
	}
	if m.Solution != nil {
		dto.OptimalReason = m.Solution.OptimalReason
		dto.Validated = m.Solution.Validated
		dto.Steps = toSteps(m.Solution.Steps)
	}
	return dto
}

func toSolveResponse(num1, num2 int64, r *domain.MethodRanking) SolveResponse {
	resp := SolveResponse{
		Num1:              num1,
		Num2:              num2,
		Answer:            r.Answer(),
		Optimal:           toMethodResult(r.Optimal),
		Alternatives:      make([]AlternativeDTO, len(r.Alternatives)),
		ComparisonSummary: r.ComparisonSummary,
	}
	for i, alt := range r.Alternatives {
		resp.Alternatives[i] = AlternativeDTO{
			MethodResultDTO: toMethodResult(alt.RankedMethod),
			WhyNotOptimal:   alt.WhyNotOptimal,
		}
	}
	return resp
}

func toHistoryItem(p domain.SolvedProblem) HistoryItem {
	alts := make([]string, len(p.Alternatives))
	for i, m := range p.Alternatives {
		alts[i] = string(m)
	}
	return HistoryItem{
		ID:            p.ID,
		Num1:          p.Num1,
		Num2:          p.Num2,
		Answer:        p.Answer,
		OptimalMethod: string(p.OptimalMethod),
		CostScore:     p.CostScore,
		QualityScore:  p.QualityScore,
		Alternatives:  alts,
		Timestamp:     p.Timestamp,
	}
}

func toAttemptResponse(a *domain.Attempt) AttemptResponse {
	return AttemptResponse{
		ID:        a.ID,
		Num1:      a.Num1,
		Num2:      a.Num2,
		Method:    string(a.Method),
		Answer:    a.Answer,
		Correct:   a.Correct,
		ElapsedMs: a.ElapsedMs,
		Timestamp: a.Timestamp,
	}
}

func toStudyResponse(s domain.StudyContent) StudyResponse {
	return StudyResponse{
		Method:         string(s.Method),
		Title:          s.Title,
		Introduction:   s.Introduction,
		Foundation:     s.Foundation,
		WhenToUse:      s.WhenToUse,
		Walkthrough:    s.Walkthrough,
		CommonMistakes: s.CommonMistakes,
		Practice:       s.Practice,
	}
}
