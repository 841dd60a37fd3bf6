package analyzer

import (
	"strings"
)

// fakePipeline returns canned linguistic annotations so tests do not depend
// on the statistical models.
type fakePipeline struct {
	sentences []string
	tokens    map[string][]Token
	entities  []Entity
}

func (f *fakePipeline) Sentences(text string) ([]string, error) {
	if f.sentences != nil {
		return f.sentences, nil
	}
	var out []string
	for _, s := range strings.Split(text, ".") {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t+".")
		}
	}
	return out, nil
}

func (f *fakePipeline) Tokens(text string) ([]Token, error) {
	if toks, ok := f.tokens[text]; ok {
		return toks, nil
	}
	var out []Token
	for _, w := range strings.Fields(text) {
		out = append(out, Token{Text: strings.Trim(w, ".,"), Tag: "NN"})
	}
	return out, nil
}

func (f *fakePipeline) Entities(string) ([]Entity, error) {
	return f.entities, nil
}
