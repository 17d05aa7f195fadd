// Package catalog define el formato YAML de autoria del cuestionario y del
// catalogo de cursos, consumido por la herramienta de seed.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vocational-api/internal/domain"
)

// File es el documento YAML completo: preguntas y cursos juntos.
type File struct {
	Questions []QuestionEntry `yaml:"questions"`
	Courses   []CourseEntry   `yaml:"courses"`
}

type QuestionEntry struct {
	ID        string `yaml:"id"`
	Text      string `yaml:"text"`
	Dimension string `yaml:"dimension"`
}

type CourseEntry struct {
	ID          string             `yaml:"id"`
	Title       string             `yaml:"title"`
	Area        string             `yaml:"area"`
	Description string             `yaml:"description"`
	Riasec      map[string]float64 `yaml:"riasec"`
}

// Load lee y valida el archivo de catalogo, devolviendo las entidades del
// dominio listas para upsert.
func Load(path string) ([]domain.Question, []domain.Course, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("parse catalog: %w", err)
	}

	questions, err := file.questions()
	if err != nil {
		return nil, nil, err
	}
	courses, err := file.courses()
	if err != nil {
		return nil, nil, err
	}
	return questions, courses, nil
}

func (f File) questions() ([]domain.Question, error) {
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("catalog has no questions")
	}

	seen := make(map[string]struct{}, len(f.Questions))
	questions := make([]domain.Question, 0, len(f.Questions))
	for _, entry := range f.Questions {
		if entry.ID == "" || entry.Text == "" {
			return nil, fmt.Errorf("question %q: id and text are required", entry.ID)
		}
		if _, dup := seen[entry.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", entry.ID)
		}
		seen[entry.ID] = struct{}{}

		dimension, err := domain.ParseDimension(entry.Dimension)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", entry.ID, err)
		}
		questions = append(questions, domain.Question{
			ID:        entry.ID,
			Text:      entry.Text,
			Dimension: dimension,
		})
	}
	return questions, nil
}

func (f File) courses() ([]domain.Course, error) {
	if len(f.Courses) == 0 {
		return nil, fmt.Errorf("catalog has no courses")
	}

	seen := make(map[string]struct{}, len(f.Courses))
	courses := make([]domain.Course, 0, len(f.Courses))
	for _, entry := range f.Courses {
		if entry.ID == "" || entry.Title == "" {
			return nil, fmt.Errorf("course %q: id and title are required", entry.ID)
		}
		if _, dup := seen[entry.ID]; dup {
			return nil, fmt.Errorf("duplicate course id %q", entry.ID)
		}
		seen[entry.ID] = struct{}{}

		var scores domain.TraitVector
		for _, d := range domain.Dimensions {
			value, ok := entry.Riasec[string(d)]
			if !ok {
				return nil, fmt.Errorf("course %q: missing riasec dimension %s", entry.ID, d)
			}
			if value < domain.MinScore || value > domain.MaxScore {
				return nil, fmt.Errorf("course %q: riasec %s=%v outside [%d,%d]",
					entry.ID, d, value, domain.MinScore, domain.MaxScore)
			}
			scores.Set(d, value)
		}

		courses = append(courses, domain.Course{
			ID:          entry.ID,
			Title:       entry.Title,
			Area:        entry.Area,
			Description: entry.Description,
			Scores:      scores,
		})
	}
	return courses, nil
}

// MissingDimensions lista las dimensiones sin ninguna pregunta asociada.
// Un catalogo asi produce vectores incompletos e imposibles de clasificar.
func MissingDimensions(questions []domain.Question) []domain.Dimension {
	covered := make(map[domain.Dimension]bool, len(domain.Dimensions))
	for _, q := range questions {
		covered[q.Dimension] = true
	}
	var missing []domain.Dimension
	for _, d := range domain.Dimensions {
		if !covered[d] {
			missing = append(missing, d)
		}
	}
	return missing
}
