package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind clasifica las fallas del engine. El transporte mapea cada kind
// a un status; solo KindStorage es transitorio y reintentable.
type ErrorKind string

const (
	KindValidation       ErrorKind = "validation"
	KindIncompleteVector ErrorKind = "incomplete_vector"
	KindConfiguration    ErrorKind = "configuration"
	KindNotFound         ErrorKind = "not_found"
	KindStorage          ErrorKind = "storage"
)

// Error transporta el kind y el campo ofensor junto al mensaje. Se usa como
// valor de retorno explicito, nunca para control de flujo interno.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// NewValidationError marca input invalido del caller. No se reintenta.
func NewValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NewIncompleteVectorError marca un vector con dimensiones sin definir,
// producto de un catalogo de preguntas que omite dimensiones.
func NewIncompleteVectorError(missing []Dimension) *Error {
	letters := make([]string, len(missing))
	for i, d := range missing {
		letters[i] = string(d)
	}
	return &Error{
		Kind:    KindIncompleteVector,
		Field:   "user_scores",
		Message: "undefined dimensions: " + strings.Join(letters, ","),
	}
}

// NewConfigurationError marca data de referencia inutilizable (p.ej. un
// catalogo de cursos vacio).
func NewConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// NewNotFoundError marca una identidad desconocida.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewStorageError envuelve una falla de persistencia ya reintentada.
func NewStorageError(cause error) *Error {
	return &Error{Kind: KindStorage, Message: "persistence failed", cause: cause}
}

// KindOf extrae el kind de un error, o "" si no es un *Error del dominio.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
