package methods

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
)

//go:embed study.yaml
var studyYAML []byte

var (
	studyOnce  sync.Once
	studyIndex map[domain.MethodName]domain.StudyContent
	studyErr   error
)

// loadStudy разбирает встроенный study.yaml один раз.
func loadStudy() (map[domain.MethodName]domain.StudyContent, error) {
	studyOnce.Do(func() {
		raw := make(map[string]domain.StudyContent)
		if err := yaml.Unmarshal(studyYAML, &raw); err != nil {
			studyErr = fmt.Errorf("study content: %w", err)
			return
		}
		studyIndex = make(map[domain.MethodName]domain.StudyContent, len(raw))
		for name, c := range raw {
			c.Method = domain.MethodName(name)
			studyIndex[c.Method] = c
		}
	})
	return studyIndex, studyErr
}

// studyContent возвращает учебный текст метода. Файл встроен в бинарь, так что ошибка разбора — ошибка сборки.
func studyContent(name domain.MethodName) domain.StudyContent {
	idx, err := loadStudy()
	if err != nil {
		panic(err)
	}
	c, ok := idx[name]
	if !ok {
		return domain.StudyContent{Method: name, Title: name.DisplayName()}
	}
	return c
}
