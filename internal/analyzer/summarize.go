package analyzer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Summarize returns an extractive summary of up to n sentences, in original
// order. Texts with n or fewer sentences are returned unchanged.
func (a *Analyzer) Summarize(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	n := a.cfg.SummarySentences
	sentences, err := a.pipe().Sentences(text)
	if err != nil {
		return "", err
	}
	if len(sentences) <= n {
		return text, nil
	}

	type scored struct {
		index int
		score float64
	}
	scores := make([]scored, 0, len(sentences))
	for i, sentence := range sentences {
		score := float64(a.countNouns(sentence))
		score -= float64(len(sentence)) / 200.0
		if i == 0 {
			score += 1.0
		}
		scores = append(scores, scored{index: i, score: score})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})
	top := scores[:n]
	sort.Slice(top, func(i, j int) bool { return top[i].index < top[j].index })

	picked := make([]string, 0, n)
	for _, s := range top {
		picked = append(picked, strings.TrimSpace(sentences[s.index]))
	}
	return strings.Join(picked, " "), nil
}

// countNouns counts noun tokens in a sentence. When tagging fails it falls
// back to counting words longer than two runes.
func (a *Analyzer) countNouns(sentence string) int {
	tokens, err := a.pipe().Tokens(sentence)
	if err != nil || len(tokens) == 0 {
		count := 0
		for _, w := range tokenPattern.FindAllString(sentence, -1) {
			if utf8.RuneCountInString(w) > 2 {
				count++
			}
		}
		return count
	}
	count := 0
	for _, t := range tokens {
		if strings.HasPrefix(t.Tag, "NN") {
			count++
		}
	}
	return count
}
