package domain

import "fmt"

// Dimension es una de las seis dimensiones RIASEC del modelo de Holland.
type Dimension string

const (
	DimRealistic     Dimension = "R"
	DimInvestigative Dimension = "I"
	DimArtistic      Dimension = "A"
	DimSocial        Dimension = "S"
	DimEnterprising  Dimension = "E"
	DimConventional  Dimension = "C"
)

// Dimensions lista las seis dimensiones en orden canonico R, I, A, S, E, C.
// El orden importa: es el criterio de desempate del perfil dominante y el
// orden de componentes del vector almacenado en Postgres.
var Dimensions = [6]Dimension{
	DimRealistic,
	DimInvestigative,
	DimArtistic,
	DimSocial,
	DimEnterprising,
	DimConventional,
}

// ParseDimension valida una letra de dimension.
func ParseDimension(s string) (Dimension, error) {
	for _, d := range Dimensions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown riasec dimension %q", s)
}
