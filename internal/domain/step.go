package domain

// StepKind — роль шага внутри списка подшагов родителя.
type StepKind string

const (
	StepPlain     StepKind = ""
	StepPartition StepKind = "partition"
	StepTerm      StepKind = "term"
	StepCombine   StepKind = "combine"
)

// Combine — как term-подшаги собираются в результат родителя.
type Combine string

const (
	CombineNone       Combine = ""
	CombineSum        Combine = "sum"
	CombineDifference Combine = "difference"
	CombineProduct    Combine = "product"
)

// Step — узел дерева вывода. Шаг владеет своими подшагами, глубина подшагов на единицу больше.
type Step struct {
	Expression  string
	Result      int64
	Explanation string
	Depth       int
	Kind        StepKind
	Combine     Combine
	SubSteps    []Step
}

// Terms возвращает подшаги с ролью term.
func (s Step) Terms() []Step {
	var out []Step
	for _, sub := range s.SubSteps {
		if sub.Kind == StepTerm {
			out = append(out, sub)
		}
	}
	return out
}

// CountNodes возвращает число шагов в поддереве вместе с самим шагом.
func (s Step) CountNodes() int {
	n := 1
	for _, sub := range s.SubSteps {
		n += sub.CountNodes()
	}
	return n
}

// MaxDepth возвращает наибольшую глубину в поддереве.
func (s Step) MaxDepth() int {
	d := s.Depth
	for _, sub := range s.SubSteps {
		if sd := sub.MaxDepth(); sd > d {
			d = sd
		}
	}
	return d
}
