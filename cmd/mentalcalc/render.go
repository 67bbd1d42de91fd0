package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/selector"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	bestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	altStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	exprStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func renderRanking(w io.Writer, num1, num2 int64, r *domain.MethodRanking, altSteps bool) {
	fmt.Fprintf(w, "%s = %d\n\n", titleStyle.Render(fmt.Sprintf("%d × %d", num1, num2)), r.Answer())

	opt := r.Optimal
	fmt.Fprintf(w, "%s %s\n", bestStyle.Render("★ "+opt.Method.DisplayName()), scores(opt))
	if opt.Solution != nil {
		if opt.Solution.OptimalReason != "" {
			fmt.Fprintln(w, dimStyle.Render(opt.Solution.OptimalReason))
		}
		renderSteps(w, opt.Solution.Steps, 1)
	}

	for _, alt := range r.Alternatives {
		fmt.Fprintf(w, "\n%s %s\n", altStyle.Render("• "+alt.Method.DisplayName()), scores(alt.RankedMethod))
		fmt.Fprintln(w, dimStyle.Render(alt.WhyNotOptimal))
		if altSteps && alt.Solution != nil {
			renderSteps(w, alt.Solution.Steps, 1)
		}
	}

	fmt.Fprintf(w, "\n%s\n", r.ComparisonSummary)
}

func scores(m domain.RankedMethod) string {
	return dimStyle.Render(fmt.Sprintf("(cost %.2f, quality %.2f, score %.2f)",
		m.CostScore, m.QualityScore, selector.CompositeScore(m.CostScore, m.QualityScore)))
}

// renderSteps печатает дерево шагов с отступом по уровню.
func renderSteps(w io.Writer, steps []domain.Step, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, s := range steps {
		fmt.Fprintf(w, "%s%s = %d", pad, exprStyle.Render(s.Expression), s.Result)
		if s.Explanation != "" {
			fmt.Fprintf(w, "  %s", dimStyle.Render(s.Explanation))
		}
		fmt.Fprintln(w)
		renderSteps(w, s.SubSteps, indent+1)
	}
}

func renderStudy(w io.Writer, c domain.StudyContent) {
	fmt.Fprintln(w, titleStyle.Render(c.Title))
	fmt.Fprintf(w, "\n%s\n", c.Introduction)
	if c.Foundation != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", bestStyle.Render("Why it works"), c.Foundation)
	}
	renderList(w, "When to use", c.WhenToUse)
	renderList(w, "Walkthrough", c.Walkthrough)
	renderList(w, "Common mistakes", c.CommonMistakes)
	renderList(w, "Practice", c.Practice)
}

func renderList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", bestStyle.Render(title))
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}

func renderMethods(w io.Writer, list []domain.MethodInfo) {
	for i, m := range list {
		fmt.Fprintf(w, "%d. %s %s\n   %s\n", i+1, titleStyle.Render(m.DisplayName), dimStyle.Render("("+string(m.Name)+")"), m.Characteristic)
	}
}
