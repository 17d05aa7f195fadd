package service

import (
	"fmt"
	"reflect"
	"testing"

	"vocational-api/internal/domain"
)

func matcherVector() domain.TraitVector {
	return domain.TraitVector{R: 4, I: 5, A: 2, S: 1, E: 3, C: 4}
}

func matcherCatalog() []domain.Course {
	return []domain.Course{
		{ID: "c1", Title: "Curso 1", Scores: domain.TraitVector{R: 4, I: 5, A: 2, S: 1, E: 3, C: 4}},
		{ID: "c2", Title: "Curso 2", Scores: domain.TraitVector{R: 1, I: 1, A: 5, S: 5, E: 2, C: 1}},
		{ID: "c3", Title: "Curso 3", Scores: domain.TraitVector{R: 3, I: 4, A: 2, S: 2, E: 3, C: 4}},
	}
}

func TestMatch_ScoreBoundsAndOrdering(t *testing.T) {
	matcher := CourseMatcher{}

	matched, err := matcher.Match(matcherVector(), matcherCatalog(), 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(matched) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matched))
	}
	for _, m := range matched {
		if m.MatchScore < 0 || m.MatchScore > 1 {
			t.Fatalf("match score outside [0,1]: %v", m.MatchScore)
		}
	}
	for i := 1; i < len(matched); i++ {
		if matched[i-1].MatchScore < matched[i].MatchScore {
			t.Fatalf("ranking not descending at %d: %+v", i, matched)
		}
	}
	// c1 es identico al vector del usuario: coseno 1, score 1.
	if matched[0].ID != "c1" || matched[0].MatchScore < 0.999 {
		t.Fatalf("expected c1 with score ~1 first, got %s (%v)", matched[0].ID, matched[0].MatchScore)
	}
}

func TestMatch_TieBreakByCourseID(t *testing.T) {
	matcher := CourseMatcher{}
	shape := domain.TraitVector{R: 4, I: 4, A: 2, S: 2, E: 3, C: 3}
	// Mismo vector ideal en ambos: empate exacto de score.
	courses := []domain.Course{
		{ID: "zz-curso", Scores: shape},
		{ID: "aa-curso", Scores: shape},
		{ID: "mm-curso", Scores: domain.TraitVector{R: 1, I: 1, A: 5, S: 5, E: 1, C: 1}},
	}

	matched, err := matcher.Match(matcherVector(), courses, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if matched[0].ID != "aa-curso" || matched[1].ID != "zz-curso" {
		t.Fatalf("expected id-ascending tie-break, got %s then %s", matched[0].ID, matched[1].ID)
	}
	if matched[0].MatchScore != matched[1].MatchScore {
		t.Fatalf("expected equal scores for identical courses")
	}
}

func TestMatch_LimitHandling(t *testing.T) {
	matcher := CourseMatcher{}

	matched, err := matcher.Match(matcherVector(), matcherCatalog(), 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}

	// Limite mayor que el catalogo devuelve todo.
	matched, err = matcher.Match(matcherVector(), matcherCatalog(), 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(matched) != 3 {
		t.Fatalf("expected all 3 matches, got %d", len(matched))
	}

	if _, err := matcher.Match(matcherVector(), matcherCatalog(), 0); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation kind for limit 0, got %v", err)
	}
	if _, err := matcher.Match(matcherVector(), matcherCatalog(), -1); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation kind for negative limit, got %v", err)
	}
}

func TestMatch_EmptyCatalog(t *testing.T) {
	matcher := CourseMatcher{}
	if _, err := matcher.Match(matcherVector(), nil, 5); domain.KindOf(err) != domain.KindConfiguration {
		t.Fatalf("expected configuration kind, got %v", err)
	}
}

func TestMatch_IncompleteVector(t *testing.T) {
	matcher := CourseMatcher{}
	partial := domain.TraitVector{R: 3, I: 3, A: 5}
	if _, err := matcher.Match(partial, matcherCatalog(), 5); domain.KindOf(err) != domain.KindIncompleteVector {
		t.Fatalf("expected incomplete_vector kind, got %v", err)
	}
}

func TestMatch_ZeroMagnitudeCourse(t *testing.T) {
	matcher := CourseMatcher{}
	courses := []domain.Course{{ID: "vacio", Scores: domain.TraitVector{}}}

	matched, err := matcher.Match(matcherVector(), courses, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if matched[0].MatchScore != 0.5 {
		t.Fatalf("expected neutral 0.5 for zero-magnitude course, got %v", matched[0].MatchScore)
	}
}

func TestMatch_ParallelPathIsDeterministic(t *testing.T) {
	matcher := CourseMatcher{}

	// Catalogo grande para forzar la rama paralela del matcher.
	courses := make([]domain.Course, 0, parallelCatalogThreshold+40)
	for i := 0; i < parallelCatalogThreshold+40; i++ {
		courses = append(courses, domain.Course{
			ID: fmt.Sprintf("curso-%03d", i),
			Scores: domain.TraitVector{
				R: float64(1 + i%5), I: float64(1 + (i*2)%5), A: float64(1 + (i*3)%5),
				S: float64(1 + (i*5)%5), E: float64(1 + (i*7)%5), C: float64(1 + (i*11)%5),
			},
		})
	}

	first, err := matcher.Match(matcherVector(), courses, len(courses))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for run := 0; run < 10; run++ {
		again, err := matcher.Match(matcherVector(), courses, len(courses))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("parallel matching is not deterministic (run %d)", run)
		}
	}
	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		if prev.MatchScore < cur.MatchScore {
			t.Fatalf("ranking not descending at %d", i)
		}
		if prev.MatchScore == cur.MatchScore && prev.ID > cur.ID {
			t.Fatalf("tie not broken by ascending id at %d: %s > %s", i, prev.ID, cur.ID)
		}
	}
}
