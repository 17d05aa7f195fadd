package domain

import "testing"

func TestTraitVectorCompleteness(t *testing.T) {
	var empty TraitVector
	if empty.Complete() {
		t.Fatalf("zero vector must be incomplete")
	}
	if got := empty.Undefined(); len(got) != 6 {
		t.Fatalf("expected all 6 dimensions undefined, got %v", got)
	}

	partial := TraitVector{R: 3, I: 3, A: 5}
	if partial.Complete() {
		t.Fatalf("partial vector must be incomplete")
	}
	missing := partial.Undefined()
	want := []Dimension{DimSocial, DimEnterprising, DimConventional}
	if len(missing) != len(want) {
		t.Fatalf("expected %v, got %v", want, missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("expected canonical order %v, got %v", want, missing)
		}
	}

	full := TraitVector{R: 1, I: 2, A: 3, S: 4, E: 5, C: 1}
	if !full.Complete() {
		t.Fatalf("expected complete vector")
	}
}

func TestTraitVectorSetAndValue(t *testing.T) {
	var v TraitVector
	for i, d := range Dimensions {
		v.Set(d, float64(i+1))
	}
	for i, d := range Dimensions {
		if v.Value(d) != float64(i+1) {
			t.Fatalf("dimension %s: expected %d, got %v", d, i+1, v.Value(d))
		}
	}
}
