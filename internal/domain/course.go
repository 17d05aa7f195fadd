package domain

// Course es una carrera del catalogo con su perfil RIASEC ideal.
// Data de referencia inmutable, propiedad del catalogo externo.
type Course struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Scores      TraitVector `json:"riasec_scores"`
	Description string      `json:"description"`
	Area        string      `json:"area"`
}

// MatchedCourse es la proyeccion transitoria de un Course con su afinidad
// respecto del vector del usuario, acotada a [0,1] (1 = mejor ajuste).
type MatchedCourse struct {
	Course
	MatchScore float64 `json:"match_score"`
}
