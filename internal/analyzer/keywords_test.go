package analyzer

import (
	"testing"
)

func TestScorePhrasesMultiWordBoost(t *testing.T) {
	// Same frequency, more words: higher score.
	scored := scorePhrases([]string{"gato", "gato negro"}, nil, 6)
	if len(scored) != 2 {
		t.Fatalf("expected 2 phrases, got %d", len(scored))
	}
	if scored[0].Text != "gato negro" {
		t.Errorf("top phrase = %q, want multi-word phrase first", scored[0].Text)
	}
	if scored[0].Score != 1.5 {
		t.Errorf("two-word score = %v, want 1.5", scored[0].Score)
	}
	if scored[1].Score != 1.0 {
		t.Errorf("one-word score = %v, want 1.0", scored[1].Score)
	}
}

func TestScorePhrasesFrequency(t *testing.T) {
	scored := scorePhrases([]string{"lenguaje natural", "lenguaje natural", "otro tema"}, nil, 6)
	if scored[0].Text != "lenguaje natural" || scored[0].Score != 3.0 {
		t.Errorf("got %+v, want lenguaje natural with score 3.0", scored[0])
	}
}

func TestScorePhrasesTopNounBonus(t *testing.T) {
	topNouns := map[string]bool{"lenguaje": true}
	scored := scorePhrases([]string{"lenguaje natural"}, topNouns, 6)
	if scored[0].Score != 1.7 {
		t.Errorf("score = %v, want 1.5 + 0.2 bonus", scored[0].Score)
	}
}

func TestScorePhrasesTruncation(t *testing.T) {
	cands := []string{"uno x", "dos x", "tres x", "cuatro x", "cinco x", "seis x", "siete x"}
	scored := scorePhrases(cands, nil, 6)
	if len(scored) != 6 {
		t.Errorf("len = %d, want capped at 6", len(scored))
	}
}

func TestKeywordsEmptyInput(t *testing.T) {
	a := New(Config{}, &fakePipeline{})
	got, err := a.Keywords("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil result for empty input, got %+v", got)
	}
}

func TestKeywordsCategories(t *testing.T) {
	text := "El análisis del lenguaje natural estudia el lenguaje humano."
	a := New(Config{TopWords: 5, TopPhrases: 6}, &fakePipeline{
		tokens: map[string][]Token{
			text: {
				{Text: "El", Tag: "DT"},
				{Text: "análisis", Tag: "NN"},
				{Text: "del", Tag: "IN"},
				{Text: "lenguaje", Tag: "NN"},
				{Text: "natural", Tag: "JJ"},
				{Text: "estudia", Tag: "VB"},
				{Text: "el", Tag: "DT"},
				{Text: "lenguaje", Tag: "NN"},
				{Text: "humano", Tag: "JJ"},
			},
		},
	})

	got, err := a.Keywords(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, cat := range []string{"top_5_palabras", "sustantivos", "verbos", "frases_clave"} {
		if _, ok := got[cat]; !ok {
			t.Errorf("missing category %q", cat)
		}
	}

	nouns := got["sustantivos"]
	if len(nouns) == 0 || nouns[0].Text != stem("lenguaje") {
		t.Errorf("top noun = %+v, want stem of lenguaje first", nouns)
	}
	if nouns[0].Score != 2 {
		t.Errorf("top noun count = %v, want 2", nouns[0].Score)
	}

	verbs := got["verbos"]
	if len(verbs) != 1 || verbs[0].Text != stem("estudia") {
		t.Errorf("verbs = %+v, want only the stem of estudia", verbs)
	}

	words := got["top_5_palabras"]
	for _, w := range words {
		if IsStopWord(w.Text) {
			t.Errorf("stopword %q leaked into top words", w.Text)
		}
	}
	if len(words) == 0 || words[0].Text != "lenguaje" {
		t.Errorf("top word = %+v, want lenguaje first", words)
	}
}

func TestKeywordsPhrasesFromNounRuns(t *testing.T) {
	text := "procesamiento del lenguaje natural"
	a := New(Config{}, &fakePipeline{
		tokens: map[string][]Token{
			text: {
				{Text: "procesamiento", Tag: "NN"},
				{Text: "del", Tag: "IN"},
				{Text: "lenguaje", Tag: "NN"},
				{Text: "natural", Tag: "JJ"},
			},
		},
	})

	got, err := a.Keywords(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	phrases := got["frases_clave"]
	if len(phrases) != 2 {
		t.Fatalf("phrases = %+v, want two chunks split on the preposition", phrases)
	}
	want := stem("lenguaje") + " " + stem("natural")
	if phrases[0].Text != want {
		t.Errorf("top phrase = %q, want %q", phrases[0].Text, want)
	}
}
