package domain

import "time"

// Assessment es el resultado de una evaluacion completa: el vector del
// usuario, su codigo de Holland y los cursos mejor rankeados. Inmutable una
// vez creado; el ID lo asigna el store al persistir (vacio si es efimero).
type Assessment struct {
	ID              string          `json:"id,omitempty"`
	UserScores      TraitVector     `json:"user_scores"`
	DominantProfile string          `json:"dominant_profile"`
	TopCourses      []MatchedCourse `json:"top_courses"`

	// Respuestas originales, persistidas para recalibraciones futuras.
	// No forman parte de la respuesta al cliente.
	Answers   []Answer  `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Feedback es la valoracion del usuario sobre un Assessment. Una sola por
// assessment: un envio posterior reemplaza al anterior (last-write-wins).
type Feedback struct {
	AssessmentID string    `json:"assessment_id"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
