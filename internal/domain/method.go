package domain

// MethodName — идентификатор метода устного умножения.
type MethodName string

// Методы в порядке реестра. Порядок важен: при равном composite score побеждает тот, что раньше.
const (
	MethodDistributive        MethodName = "distributive"
	MethodDifferenceOfSquares MethodName = "difference_of_squares"
	MethodNearPowerOfTen      MethodName = "near_power_of_10"
	MethodFactorization       MethodName = "factorization"
	MethodSquaring            MethodName = "squaring"
	MethodNear100             MethodName = "near_100"
	MethodSumToTen            MethodName = "sum_to_ten"
	MethodSquaringEndingIn5   MethodName = "squaring_ending_in_5"
)

var displayNames = map[MethodName]string{
	MethodDistributive:        "Distributive",
	MethodDifferenceOfSquares: "Difference of Squares",
	MethodNearPowerOfTen:      "Near Power of 10",
	MethodFactorization:       "Factorization",
	MethodSquaring:            "Squaring",
	MethodNear100:             "Near 100",
	MethodSumToTen:            "Sum to Ten",
	MethodSquaringEndingIn5:   "Squaring Ending in 5",
}

// DisplayName возвращает человекочитаемое имя метода.
func (m MethodName) DisplayName() string {
	if s, ok := displayNames[m]; ok {
		return s
	}
	return string(m)
}

// Known сообщает, существует ли такой метод.
func (m MethodName) Known() bool {
	_, ok := displayNames[m]
	return ok
}

// ParseMethodName разбирает имя метода; неизвестное имя — ErrUnknownMethod.
func ParseMethodName(s string) (MethodName, error) {
	m := MethodName(s)
	if !m.Known() {
		return "", &UnknownMethodError{Name: s}
	}
	return m, nil
}

// StudyContent — статический учебный текст по методу (для режима обучения).
type StudyContent struct {
	Method         MethodName `yaml:"-"`
	Title          string     `yaml:"title"`
	Introduction   string     `yaml:"introduction"`
	Foundation     string     `yaml:"foundation"`
	WhenToUse      []string   `yaml:"when_to_use"`
	Walkthrough    []string   `yaml:"walkthrough"`
	CommonMistakes []string   `yaml:"common_mistakes"`
	Practice       []string   `yaml:"practice"`
}

// MethodInfo — строка каталога методов.
type MethodInfo struct {
	Name           MethodName
	DisplayName    string
	Characteristic string
}
