package analyzer

import (
	"strings"
	"testing"
)

func TestSummarizeShortTextPassthrough(t *testing.T) {
	a := New(Config{SummarySentences: 3}, &fakePipeline{
		sentences: []string{"Una frase.", "Otra frase."},
	})

	text := "Una frase. Otra frase."
	got, err := a.Summarize(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != text {
		t.Errorf("Summarize = %q, want input unchanged when sentence count <= n", got)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	a := New(Config{}, &fakePipeline{})

	got, err := a.Summarize("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("Summarize = %q, want empty string", got)
	}
}

func TestSummarizePicksNounHeavySentences(t *testing.T) {
	noun := func(w string) Token { return Token{Text: w, Tag: "NN"} }
	det := func(w string) Token { return Token{Text: w, Tag: "DT"} }

	s1 := "El perro come."
	s2 := "Sí."
	s3 := "La casa del vecino tiene jardín y piscina."
	s4 := "No."

	a := New(Config{SummarySentences: 2}, &fakePipeline{
		sentences: []string{s1, s2, s3, s4},
		tokens: map[string][]Token{
			s1: {det("El"), noun("perro"), {Text: "come", Tag: "VB"}},
			s2: {{Text: "Sí", Tag: "UH"}},
			s3: {det("La"), noun("casa"), det("del"), noun("vecino"), {Text: "tiene", Tag: "VB"}, noun("jardín"), noun("piscina")},
			s4: {{Text: "No", Tag: "UH"}},
		},
	})

	got, err := a.Summarize(s1 + " " + s2 + " " + s3 + " " + s4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, s3) {
		t.Errorf("summary %q should contain the noun-heavy sentence", got)
	}
	if strings.Contains(got, s2) || strings.Contains(got, s4) {
		t.Errorf("summary %q should skip the empty-score sentences", got)
	}
	// First sentence wins through its opening bonus.
	if !strings.HasPrefix(got, s1) {
		t.Errorf("summary %q should keep original sentence order", got)
	}
}
