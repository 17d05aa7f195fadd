package domain

// TraitVector resume un perfil RIASEC como seis valores en [1,5].
// Un campo en 0 significa "sin definir": el catalogo no aporto ninguna
// pregunta para esa dimension (0 queda fuera del rango valido, asi que no
// hay ambiguedad con un promedio real).
type TraitVector struct {
	R float64 `json:"R"`
	I float64 `json:"I"`
	A float64 `json:"A"`
	S float64 `json:"S"`
	E float64 `json:"E"`
	C float64 `json:"C"`
}

// Value devuelve el valor de una dimension.
func (v TraitVector) Value(d Dimension) float64 {
	switch d {
	case DimRealistic:
		return v.R
	case DimInvestigative:
		return v.I
	case DimArtistic:
		return v.A
	case DimSocial:
		return v.S
	case DimEnterprising:
		return v.E
	case DimConventional:
		return v.C
	}
	return 0
}

// Set asigna el valor de una dimension.
func (v *TraitVector) Set(d Dimension, value float64) {
	switch d {
	case DimRealistic:
		v.R = value
	case DimInvestigative:
		v.I = value
	case DimArtistic:
		v.A = value
	case DimSocial:
		v.S = value
	case DimEnterprising:
		v.E = value
	case DimConventional:
		v.C = value
	}
}

// Defined indica si la dimension tiene un valor agregado.
func (v TraitVector) Defined(d Dimension) bool {
	return v.Value(d) != 0
}

// Complete indica si las seis dimensiones estan definidas. Clasificar o
// comparar un vector parcial no tiene sentido, asi que los consumidores
// deben verificar esto primero.
func (v TraitVector) Complete() bool {
	for _, d := range Dimensions {
		if !v.Defined(d) {
			return false
		}
	}
	return true
}

// Undefined devuelve las dimensiones sin valor, en orden canonico.
func (v TraitVector) Undefined() []Dimension {
	var missing []Dimension
	for _, d := range Dimensions {
		if !v.Defined(d) {
			missing = append(missing, d)
		}
	}
	return missing
}
