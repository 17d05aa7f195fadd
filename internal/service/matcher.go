package service

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"vocational-api/internal/domain"
)

// parallelCatalogThreshold define desde que tamano de catalogo conviene
// repartir el calculo de similitud entre workers.
const parallelCatalogThreshold = 64

// CourseMatcher rankea el catalogo de cursos contra el vector del usuario.
// Puro: no toca estado compartido, y el orden final es deterministico sin
// importar el orden de evaluacion ni el orden del catalogo.
type CourseMatcher struct{}

// DefaultCourseMatcher permite uso directo sin instanciar.
var DefaultCourseMatcher = CourseMatcher{}

// Match devuelve los mejores limit cursos ordenados por afinidad
// descendente; el empate lo desempata el id de curso ascendente.
func (m CourseMatcher) Match(vector domain.TraitVector, courses []domain.Course, limit int) ([]domain.MatchedCourse, error) {
	if limit <= 0 {
		return nil, domain.NewValidationError("limit", "limit must be positive")
	}
	if len(courses) == 0 {
		return nil, domain.NewConfigurationError("course catalog is empty")
	}
	if !vector.Complete() {
		return nil, domain.NewIncompleteVectorError(vector.Undefined())
	}

	// Cada curso se puntua de forma independiente en su posicion del
	// slice, asi el paralelismo no altera el resultado.
	matched := make([]domain.MatchedCourse, len(courses))
	scoreAt := func(i int) {
		matched[i] = domain.MatchedCourse{
			Course:     courses[i],
			MatchScore: matchScore(vector, courses[i].Scores),
		}
	}

	if len(courses) >= parallelCatalogThreshold {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range courses {
			i := i
			g.Go(func() error {
				scoreAt(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range courses {
			scoreAt(i)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].MatchScore != matched[j].MatchScore {
			return matched[i].MatchScore > matched[j].MatchScore
		}
		return matched[i].ID < matched[j].ID
	})

	if limit > len(matched) {
		limit = len(matched)
	}
	return matched[:limit], nil
}

// matchScore calcula similitud coseno entre los dos vectores RIASEC y la
// reescala de [-1,1] a [0,1]. Coseno y no distancia euclidea: un usuario
// que puntua todo alto y otro que puntua la misma forma proporcionalmente
// mas bajo deben matchear los mismos cursos.
func matchScore(user, course domain.TraitVector) float64 {
	var dot, userMag, courseMag float64
	for _, d := range domain.Dimensions {
		u := user.Value(d)
		c := course.Value(d)
		dot += u * c
		userMag += u * u
		courseMag += c * c
	}

	var cos float64
	if userMag > 0 && courseMag > 0 {
		cos = dot / (math.Sqrt(userMag) * math.Sqrt(courseMag))
	}
	// Deriva de punto flotante no debe sacar el score de [0,1].
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return (cos + 1) / 2
}
