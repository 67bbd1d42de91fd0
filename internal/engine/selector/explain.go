package selector

import (
	"fmt"
	"strings"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/methods"
)

// Thresholds — пороги каскада объяснений "почему не оптимальный".
type Thresholds struct {
	// SignificantCostGap — разница стоимостей, после которой говорим о процентах лишних усилий.
	SignificantCostGap float64 `envconfig:"SIGNIFICANT_COST_GAP" default:"1.0"`
	// ModerateCostGap — нижняя граница простого сравнения стоимостей.
	ModerateCostGap float64 `envconfig:"MODERATE_COST_GAP" default:"0.3"`
	// QualityGap — разница качества (альтернатива минус оптимальный), ниже которой метод "менее изящен".
	QualityGap float64 `envconfig:"QUALITY_GAP" default:"-0.2"`
	// CompositeGap — если итоговые оценки ближе, добавляем фразу про общий балл.
	CompositeGap float64 `envconfig:"COMPOSITE_GAP" default:"0.5"`
}

// DefaultThresholds — пороги по умолчанию.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SignificantCostGap: 1.0,
		ModerateCostGap:    0.3,
		QualityGap:         -0.2,
		CompositeGap:       0.5,
	}
}

// whyNotOptimal объясняет, чем альтернатива хуже оптимального метода. Причины соединяются через ", and ".
func (t Thresholds) whyNotOptimal(optimal, alt scored) string {
	var reasons []string

	costGap := alt.cost - optimal.cost
	switch {
	case costGap > t.SignificantCostGap:
		pct := 100.0
		if optimal.cost > 0 {
			pct = costGap / optimal.cost * 100
		}
		reasons = append(reasons, fmt.Sprintf("it takes about %.0f%% more effort (cost %.2f vs %.2f)", pct, alt.cost, optimal.cost))
	case costGap > t.ModerateCostGap:
		reasons = append(reasons, fmt.Sprintf("it costs more (%.2f vs %.2f)", alt.cost, optimal.cost))
	}

	if alt.quality-optimal.quality < t.QualityGap {
		reasons = append(reasons, fmt.Sprintf("it is less elegant for these numbers (quality %.2f vs %.2f)", alt.quality, optimal.quality))
	}

	compositeGap := alt.composite - optimal.composite
	if len(reasons) == 0 || compositeGap < t.CompositeGap {
		reasons = append(reasons, fmt.Sprintf("its overall score is %.2f against %.2f for %s", alt.composite, optimal.composite, optimal.method.Name().DisplayName()))
	}

	text := strings.Join(reasons, ", and ")
	return strings.ToUpper(text[:1]) + text[1:] + "."
}

// comparisonSummary — рассказ об оптимальном методе и список альтернатив.
func comparisonSummary(num1, num2 int64, optimal scored, alts []scored) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is the best fit for %d × %d (score %.2f). %s",
		optimal.method.Name().DisplayName(), num1, num2, optimal.composite, optimal.method.Rationale(num1, num2))
	if len(alts) == 0 {
		b.WriteString("\nNo other method applies to these numbers.")
		return b.String()
	}
	b.WriteString("\nAlternatives:")
	for _, a := range alts {
		fmt.Fprintf(&b, "\n- %s (score %.2f): %s", a.method.Name().DisplayName(), a.composite, a.method.Characteristic())
	}
	return b.String()
}

// scored — применимый метод с его оценками.
type scored struct {
	method    methods.Method
	cost      float64
	quality   float64
	composite float64
}

func (s scored) ranked(sol *domain.Solution) domain.RankedMethod {
	return domain.RankedMethod{
		Method:       s.method.Name(),
		Solution:     sol,
		CostScore:    s.cost,
		QualityScore: s.quality,
	}
}
