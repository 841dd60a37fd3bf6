package sentiment

import (
	"context"
	"strings"

	"analizador/pkg"
)

// Classifier scores the overall sentiment of a Spanish text.
type Classifier interface {
	Classify(ctx context.Context, text string) (*pkg.SentimentResult, error)
	GetName() string
}

// starsToSentiment maps a star-rating label to the coarse sentiment class.
// One and two stars read negative, three neutral, four and five positive.
func starsToSentiment(label string) string {
	switch {
	case strings.Contains(label, "1"), strings.Contains(label, "2"):
		return "Negativo"
	case strings.Contains(label, "3"):
		return "Neutral"
	default:
		return "Positivo"
	}
}
