package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"analizador/pkg"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_-]+`)

// counter tallies strings while remembering first-seen order so that equal
// counts rank in insertion order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// mostCommon returns up to n entries ordered by descending count.
func (c *counter) mostCommon(n int) []pkg.ScoredTerm {
	terms := make([]pkg.ScoredTerm, 0, len(c.order))
	for _, key := range c.order {
		terms = append(terms, pkg.ScoredTerm{Text: key, Score: float64(c.counts[key])})
	}
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Score > terms[j].Score
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// Keywords extracts the top frequent words, nouns, verbs and scored
// multi-word phrases. Returns nil on empty input.
func (a *Analyzer) Keywords(text string) (pkg.KeywordResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	topN := a.cfg.TopWords

	words := newCounter()
	for _, tok := range tokenPattern.FindAllString(fold(text), -1) {
		if utf8.RuneCountInString(tok) > 2 && !IsStopWord(tok) {
			words.add(tok)
		}
	}

	tokens, err := a.pipe().Tokens(text)
	if err != nil {
		return nil, err
	}

	nouns := newCounter()
	verbs := newCounter()
	for _, tok := range tokens {
		lemma := stem(fold(tok.Text))
		if utf8.RuneCountInString(lemma) <= 2 {
			continue
		}
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			nouns.add(lemma)
		case strings.HasPrefix(tok.Tag, "VB"):
			verbs.add(lemma)
		}
	}

	topNouns := nouns.mostCommon(topN)
	topNounSet := make(map[string]bool, len(topNouns))
	for _, t := range topNouns {
		topNounSet[t.Text] = true
	}

	phrases := scorePhrases(nounChunks(tokens), topNounSet, a.cfg.TopPhrases)

	return pkg.KeywordResult{
		pkg.CategoryTopWords: words.mostCommon(topN),
		pkg.CategoryNouns:    topNouns,
		pkg.CategoryVerbs:    verbs.mostCommon(topN),
		pkg.CategoryPhrases:  phrases,
	}, nil
}

// nounChunks approximates noun phrases as contiguous runs of noun and
// adjective tokens, canonicalized to lowercase stems with stopwords removed.
func nounChunks(tokens []Token) []string {
	chunks := make([]string, 0)
	current := make([]string, 0, 4)

	flush := func() {
		if len(current) == 0 {
			return
		}
		phrase := strings.Join(current, " ")
		if utf8.RuneCountInString(phrase) >= 3 {
			chunks = append(chunks, phrase)
		}
		current = current[:0]
	}

	for _, tok := range tokens {
		if strings.HasPrefix(tok.Tag, "NN") || strings.HasPrefix(tok.Tag, "JJ") {
			folded := fold(tok.Text)
			if IsStopWord(folded) || !tokenPattern.MatchString(folded) {
				continue
			}
			current = append(current, stem(folded))
			continue
		}
		flush()
	}
	flush()
	return chunks
}

// scorePhrases ranks candidate phrases by frequency, with a boost for
// multi-word phrases and a small bonus when a phrase contains a top noun.
func scorePhrases(candidates []string, topNouns map[string]bool, topK int) []pkg.ScoredTerm {
	freq := newCounter()
	for _, phrase := range candidates {
		freq.add(phrase)
	}

	scored := make([]pkg.ScoredTerm, 0, len(freq.order))
	for _, phrase := range freq.order {
		words := strings.Fields(phrase)
		score := float64(freq.counts[phrase]) * (1 + 0.5*float64(len(words)-1))
		for _, w := range words {
			if topNouns[w] {
				score += 0.2
				break
			}
		}
		scored = append(scored, pkg.ScoredTerm{Text: phrase, Score: math.Round(score*1000) / 1000})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}
