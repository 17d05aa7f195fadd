package domain

// Question es una pregunta del cuestionario RIASEC. Data de referencia:
// el engine solo la lee, nunca la modifica.
type Question struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Dimension Dimension `json:"dimension"`
}

// Answer es la respuesta del usuario a una pregunta, con puntaje en [1,5].
type Answer struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"`
}

const (
	// MinScore y MaxScore acotan tanto los puntajes crudos como los
	// promedios por dimension (y el rating de feedback, misma escala).
	MinScore = 1
	MaxScore = 5
)
