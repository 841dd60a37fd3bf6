package analyzer

import "testing"

func TestNormalizeEmptyInput(t *testing.T) {
	a := New(Config{}, &fakePipeline{})
	if got := a.Normalize(""); got != nil {
		t.Errorf("expected nil for empty input, got %+v", got)
	}
	if got := a.Normalize("   \n\t "); got != nil {
		t.Errorf("expected nil for whitespace input, got %+v", got)
	}
}

func TestNormalizeCorrections(t *testing.T) {
	a := New(Config{}, &fakePipeline{})

	got := a.Normalize("ojalá haiga tiempo")
	if got == nil {
		t.Fatal("expected result, got nil")
	}
	if got.Corregido != "ojalá haya tiempo" {
		t.Errorf("Corregido = %q, want %q", got.Corregido, "ojalá haya tiempo")
	}
	if got.Original != "ojalá haiga tiempo" {
		t.Errorf("Original = %q, want input unchanged", got.Original)
	}
}

func TestNormalizeArticleInsertion(t *testing.T) {
	a := New(Config{}, &fakePipeline{})

	got := a.Normalize("casa bonita")
	if got.Corregido != "la casa bonita" {
		t.Errorf("Corregido = %q, want %q", got.Corregido, "la casa bonita")
	}

	got = a.Normalize("niño feliz")
	if got.Corregido != "el niño feliz" {
		t.Errorf("Corregido = %q, want %q", got.Corregido, "el niño feliz")
	}
}

func TestNormalizeCollapseRepeats(t *testing.T) {
	a := New(Config{}, &fakePipeline{})

	got := a.Normalize("hola hola Hola mundo mundo")
	if got.SinRepeticiones != "hola mundo" {
		t.Errorf("SinRepeticiones = %q, want %q", got.SinRepeticiones, "hola mundo")
	}
}

func TestNormalizeKeepsNonConsecutiveRepeats(t *testing.T) {
	a := New(Config{}, &fakePipeline{})

	got := a.Normalize("sol luna sol")
	if got.SinRepeticiones != "sol luna sol" {
		t.Errorf("SinRepeticiones = %q, want non-consecutive repeats kept", got.SinRepeticiones)
	}
}

func TestNormalizeStems(t *testing.T) {
	a := New(Config{}, &fakePipeline{})

	got := a.Normalize("Corriendo")
	if got.Lematizado == "" || got.Lematizado == "Corriendo" {
		t.Errorf("Lematizado = %q, want a lowercase stem", got.Lematizado)
	}
}
