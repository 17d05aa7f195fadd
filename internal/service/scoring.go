package service

import (
	"fmt"
	"math"
	"sort"

	"vocational-api/internal/domain"
)

// TraitScorer encapsula la agregacion de respuestas y la clasificacion del
// perfil dominante. Funciones puras: mismo input, mismo output.
type TraitScorer struct{}

// DefaultTraitScorer permite uso directo sin instanciar.
var DefaultTraitScorer = TraitScorer{}

// BuildVector agrupa las respuestas por dimension y promedia cada grupo,
// redondeado a 2 decimales para que el resultado sea reproducible entre
// plataformas. Dimensiones sin preguntas quedan sin definir.
// El orden de las respuestas no afecta el resultado.
func (TraitScorer) BuildVector(answers []domain.Answer, dimensions map[string]domain.Dimension) (domain.TraitVector, error) {
	if len(answers) == 0 {
		return domain.TraitVector{}, domain.NewValidationError("answers", "answer set is empty")
	}

	sums := make(map[domain.Dimension]float64, len(domain.Dimensions))
	counts := make(map[domain.Dimension]int, len(domain.Dimensions))
	seen := make(map[string]struct{}, len(answers))

	for _, answer := range answers {
		if _, dup := seen[answer.QuestionID]; dup {
			return domain.TraitVector{}, domain.NewValidationError("question_id",
				fmt.Sprintf("duplicate answer for question %q", answer.QuestionID))
		}
		seen[answer.QuestionID] = struct{}{}

		if answer.Score < domain.MinScore || answer.Score > domain.MaxScore {
			return domain.TraitVector{}, domain.NewValidationError("score",
				fmt.Sprintf("score %d for question %q outside [%d,%d]",
					answer.Score, answer.QuestionID, domain.MinScore, domain.MaxScore))
		}

		dimension, ok := dimensions[answer.QuestionID]
		if !ok {
			return domain.TraitVector{}, domain.NewValidationError("question_id",
				fmt.Sprintf("unknown question %q", answer.QuestionID))
		}

		sums[dimension] += float64(answer.Score)
		counts[dimension]++
	}

	var vector domain.TraitVector
	for _, d := range domain.Dimensions {
		if counts[d] == 0 {
			continue
		}
		mean := sums[d] / float64(counts[d])
		vector.Set(d, math.Round(mean*100)/100)
	}
	return vector, nil
}

// DominantProfile deriva el codigo de Holland: las tres dimensiones con
// mayor valor, en orden descendente. El empate lo gana la dimension mas
// temprana en el orden canonico R,I,A,S,E,C (el sort estable sobre la lista
// canonica garantiza exactamente eso, sin depender del orden de iteracion).
func (TraitScorer) DominantProfile(vector domain.TraitVector) (string, error) {
	if !vector.Complete() {
		return "", domain.NewIncompleteVectorError(vector.Undefined())
	}

	ranked := make([]domain.Dimension, len(domain.Dimensions))
	copy(ranked, domain.Dimensions[:])
	sort.SliceStable(ranked, func(i, j int) bool {
		return vector.Value(ranked[i]) > vector.Value(ranked[j])
	})

	code := make([]byte, 0, 3)
	for _, d := range ranked[:3] {
		code = append(code, d[0])
	}
	return string(code), nil
}
