package analyzer

import (
	"strings"

	"analizador/pkg"
)

// Common misspellings replaced by the corrector.
var correccionesComunes = map[string]string{
	"haiga":   "haya",
	"naiden":  "nadie",
	"nadien":  "nadie",
	"aserca":  "acerca",
	"enserio": "en serio",
	"haber":   "a ver",
	"iva":     "iba",
}

// Nouns the corrector prefixes with their article.
var sustantivosConArticulo = map[string]string{
	"casa":    "la casa",
	"persona": "la persona",
	"gente":   "la gente",
	"niño":    "el niño",
	"niña":    "la niña",
	"camisa":  "la camisa",
}

// Normalize produces the four normalizer views of the input. Returns nil when
// the input is empty or whitespace only.
func (a *Analyzer) Normalize(text string) *pkg.NormalizationResult {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	words := strings.Fields(text)

	return &pkg.NormalizationResult{
		Original:        text,
		Lematizado:      stemWords(words),
		SinRepeticiones: collapseRepeats(words),
		Corregido:       correctWords(words),
	}
}

// stemWords joins the Spanish stems of every word, the lemma stand-in view.
func stemWords(words []string) string {
	stems := make([]string, 0, len(words))
	for _, w := range words {
		stems = append(stems, stem(fold(w)))
	}
	return strings.Join(stems, " ")
}

// collapseRepeats removes consecutive case-insensitive duplicate words,
// keeping the first occurrence.
func collapseRepeats(words []string) string {
	kept := make([]string, 0, len(words))
	for i, w := range words {
		if i > 0 && fold(w) == fold(words[i-1]) {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// correctWords applies misspelling substitutions and article insertion, then
// drops consecutive duplicates.
func correctWords(words []string) string {
	corrected := make([]string, 0, len(words))
	for i, w := range words {
		key := fold(w)
		if repl, ok := correccionesComunes[key]; ok {
			corrected = append(corrected, repl)
			continue
		}
		if repl, ok := sustantivosConArticulo[key]; ok {
			corrected = append(corrected, repl)
			continue
		}
		if i > 0 && key == fold(words[i-1]) {
			continue
		}
		corrected = append(corrected, w)
	}
	return strings.Join(corrected, " ")
}
