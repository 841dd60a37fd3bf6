package analyzer

import (
	"regexp"

	"analizador/pkg"
)

var (
	fechaPattern  = regexp.MustCompile(`\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2})\b`)
	dineroPattern = regexp.MustCompile(`(?:€\s?\d{1,3}(?:[.,]\d{3})*(?:[.,]\d+)?|\b\d{1,3}(?:[.,]\d{3})*(?:[.,]\d+)?\s?(?:€|euros|USD)|\$\d+(?:\.\d+)?)`)
	correoPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// ExtractPatterns pulls dates, money amounts and email addresses from the
// text. Buckets with no hits come back as empty slices, never nil.
func (a *Analyzer) ExtractPatterns(text string) *pkg.PatternMatches {
	return &pkg.PatternMatches{
		Fechas:  findAll(fechaPattern, text),
		Dinero:  findAll(dineroPattern, text),
		Correos: findAll(correoPattern, text),
	}
}

func findAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
