package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"vocational-api/internal/domain"
)

func submittedAssessmentID(t *testing.T, env testEnv) string {
	t.Helper()
	rec := doJSON(t, env.router, http.MethodPost, "/submit", testAnswersPayload())
	if rec.Code != http.StatusOK {
		t.Fatalf("seed submit failed: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}
	return resp.ID
}

func TestSubmitFeedback(t *testing.T) {
	env := setupRouter(t, nil)
	id := submittedAssessmentID(t, env)

	rec := doJSON(t, env.router, http.MethodPost, "/feedback/"+id, map[string]int{"rating": 4})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Un segundo envio reemplaza al primero.
	rec = doJSON(t, env.router, http.MethodPost, "/feedback/"+id, map[string]int{"rating": 2})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(env.feedback.byAssessment) != 1 {
		t.Fatalf("expected one stored feedback, got %d", len(env.feedback.byAssessment))
	}
	if got := env.feedback.byAssessment[id].Rating; got != 2 {
		t.Fatalf("expected last rating 2, got %d", got)
	}
}

func TestSubmitFeedback_Failures(t *testing.T) {
	env := setupRouter(t, nil)
	id := submittedAssessmentID(t, env)

	for _, rating := range []int{0, 6} {
		rec := doJSON(t, env.router, http.MethodPost, "/feedback/"+id, map[string]int{"rating": rating})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for rating %d, got %d", rating, rec.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp["kind"] != string(domain.KindValidation) {
			t.Fatalf("expected validation kind, got %v", resp)
		}
	}

	// UUID valido pero inexistente: el store no tiene la fila.
	rec := doJSON(t, env.router, http.MethodPost, "/feedback/"+uuid.NewString(), map[string]int{"rating": 3})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown assessment, got %d", rec.Code)
	}

	// Id malformado (ni siquiera UUID): tambien 404, nunca un 503
	// reintentable por el 22P02 que daria la columna uuid en Postgres.
	rec = doJSON(t, env.router, http.MethodPost, "/feedback/no-such-id", map[string]int{"rating": 3})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed assessment id, got %d", rec.Code)
	}

	if len(env.feedback.byAssessment) != 0 {
		t.Fatalf("expected no feedback stored, got %d", len(env.feedback.byAssessment))
	}
}
