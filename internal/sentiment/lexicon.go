package sentiment

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"analizador/pkg"
)

// spanishLexicon holds scored sentiment words plus modifier vocabulary.
type spanishLexicon struct {
	positive     map[string]float64
	negative     map[string]float64
	intensifiers map[string]float64
	negators     []string
}

// LexiconClassifier scores sentiment from a Spanish word lexicon. It needs no
// network and serves as the offline fallback for the chat-model classifier.
type LexiconClassifier struct {
	lexicon *spanishLexicon
}

// NewLexiconClassifier builds the classifier with the embedded lexicon.
func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{lexicon: &spanishLexicon{
		positive: map[string]float64{
			"bueno": 0.6, "buena": 0.6, "excelente": 0.9, "fantástico": 0.8,
			"increíble": 0.8, "maravilloso": 0.8, "maravillosa": 0.8, "perfecto": 0.9,
			"perfecta": 0.9, "genial": 0.7, "estupendo": 0.7, "estupenda": 0.7,
			"feliz": 0.7, "alegre": 0.7, "contento": 0.6, "contenta": 0.6,
			"satisfecho": 0.6, "satisfecha": 0.6, "amor": 0.8, "gusta": 0.5,
			"encanta": 0.7, "adoro": 0.8, "recomiendo": 0.6, "mejor": 0.7,
		},
		negative: map[string]float64{
			"malo": 0.6, "mala": 0.6, "terrible": 0.9, "horrible": 0.9,
			"pésimo": 0.8, "pésima": 0.8, "odio": 0.8, "disgusta": 0.6,
			"triste": 0.6, "enojado": 0.7, "enojada": 0.7, "furioso": 0.9,
			"furiosa": 0.9, "molesto": 0.6, "molesta": 0.6, "preocupado": 0.6,
			"preocupada": 0.6, "problema": 0.5, "error": 0.6, "falla": 0.7,
			"fracaso": 0.7, "peor": 0.9, "decepción": 0.8, "decepcionado": 0.8,
		},
		intensifiers: map[string]float64{
			"muy": 1.5, "extremadamente": 2.0, "increíblemente": 1.8,
			"absolutamente": 1.7, "completamente": 1.6, "totalmente": 1.5,
			"realmente": 1.3, "bastante": 1.2,
		},
		negators: []string{
			"no", "nunca", "nada", "nadie", "ninguno", "sin", "jamás", "tampoco",
		},
	}}
}

// GetName returns the classifier name.
func (c *LexiconClassifier) GetName() string {
	return "lexicon"
}

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	sentenceSplit     = regexp.MustCompile(`[.!?]+\s*`)
)

// Classify scores the text sentence by sentence and averages the results.
func (c *LexiconClassifier) Classify(_ context.Context, text string) (*pkg.SentimentResult, error) {
	clean := strings.TrimSpace(whitespacePattern.ReplaceAllString(strings.ToLower(text), " "))
	if clean == "" {
		return &pkg.SentimentResult{Sentimiento: "Neutral", Etiqueta: "3 stars"}, nil
	}

	sentences := splitSentences(clean)

	totalScore := 0.0
	totalMagnitude := 0.0
	scores := make([]float64, 0, len(sentences))
	for _, sentence := range sentences {
		score, magnitude := c.scoreSentence(sentence)
		scores = append(scores, score)
		totalScore += score
		totalMagnitude += magnitude
	}

	avgScore := totalScore / float64(len(sentences))
	avgMagnitude := totalMagnitude / float64(len(sentences))

	label := starLabel(avgScore)
	return &pkg.SentimentResult{
		Sentimiento: starsToSentiment(label),
		Confianza:   confidence(scores, avgMagnitude),
		Etiqueta:    label,
	}, nil
}

func splitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = append(out, text)
	}
	return out
}

// scoreSentence returns the average signed score and magnitude of the scored
// words in one sentence.
func (c *LexiconClassifier) scoreSentence(sentence string) (float64, float64) {
	words := strings.Fields(sentence)

	totalScore := 0.0
	totalMagnitude := 0.0
	scoredWords := 0

	for i, word := range words {
		word = strings.Trim(word, ",;:()\"'")

		wordScore := 0.0
		if score, ok := c.lexicon.positive[word]; ok {
			wordScore = score
		}
		if score, ok := c.lexicon.negative[word]; ok {
			wordScore = -score
		}
		if wordScore == 0.0 {
			continue
		}

		wordScore *= c.intensifierFor(words, i)
		if c.negatedAt(words, i) {
			wordScore *= -0.5
		}

		totalScore += wordScore
		totalMagnitude += math.Abs(wordScore)
		scoredWords++
	}

	if scoredWords == 0 {
		return 0.0, 0.0
	}
	return clamp(totalScore/float64(scoredWords), -1, 1), math.Min(totalMagnitude/float64(scoredWords), 1.0)
}

// intensifierFor multiplies in intensifiers up to two words back, with
// reduced impact for the distant one.
func (c *LexiconClassifier) intensifierFor(words []string, index int) float64 {
	multiplier := 1.0
	if index > 0 {
		if m, ok := c.lexicon.intensifiers[words[index-1]]; ok {
			multiplier *= m
		}
	}
	if index > 1 {
		if m, ok := c.lexicon.intensifiers[words[index-2]]; ok {
			multiplier *= m * 0.8
		}
	}
	return multiplier
}

// negatedAt reports whether a negator appears up to three words back.
func (c *LexiconClassifier) negatedAt(words []string, index int) bool {
	start := index - 3
	if start < 0 {
		start = 0
	}
	for i := start; i < index; i++ {
		for _, negator := range c.lexicon.negators {
			if words[i] == negator {
				return true
			}
		}
	}
	return false
}

// starLabel maps the averaged score to a star rating label.
func starLabel(score float64) string {
	stars := 3
	switch {
	case score < -0.6:
		stars = 1
	case score < -0.1:
		stars = 2
	case score > 0.6:
		stars = 5
	case score > 0.1:
		stars = 4
	}
	return fmt.Sprintf("%d stars", stars)
}

// confidence blends magnitude with cross-sentence consistency.
func confidence(scores []float64, avgMagnitude float64) float64 {
	return clamp(avgMagnitude*0.7+consistency(scores)*0.3, 0, 1)
}

// consistency falls off with the variance of the sentence scores.
func consistency(scores []float64) float64 {
	if len(scores) <= 1 {
		return 1.0
	}
	mean := 0.0
	for _, s := range scores {
		mean += s
	}
	mean /= float64(len(scores))

	variance := 0.0
	for _, s := range scores {
		variance += (s - mean) * (s - mean)
	}
	variance /= float64(len(scores))

	return 1.0 / (1.0 + variance)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
