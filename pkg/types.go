package pkg

import "time"

// Core result types for the text-analysis operations.

// Keyword category names, in presentation order.
const (
	CategoryTopWords = "top_5_palabras"
	CategoryNouns    = "sustantivos"
	CategoryVerbs    = "verbos"
	CategoryPhrases  = "frases_clave"
)

// CategoryOrder lists keyword categories in the order front-ends print them.
var CategoryOrder = []string{CategoryTopWords, CategoryNouns, CategoryVerbs, CategoryPhrases}

// Entity bucket labels used by the NER operation.
const (
	BucketPersonas   = "Personas"
	BucketLugares    = "Lugares"
	BucketEmpresas   = "Empresas"
	BucketFechas     = "Fechas"
	BucketCantidades = "Cantidades"
)

// BucketOrder lists entity buckets in the order front-ends print them.
var BucketOrder = []string{BucketPersonas, BucketLugares, BucketEmpresas, BucketFechas, BucketCantidades}

// ScoredTerm is one ranked item in a keyword category. Score holds a raw
// frequency for word categories and a phrase score for phrase candidates.
type ScoredTerm struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// NormalizationResult contains the four views the normalizer produces.
type NormalizationResult struct {
	Original        string `json:"original"`
	Lematizado      string `json:"lematizado"`
	SinRepeticiones string `json:"sin_repeticiones"`
	Corregido       string `json:"corregido"`
}

// PatternMatches groups the regex extractor results, in document order.
type PatternMatches struct {
	Fechas  []string `json:"fechas"`
	Dinero  []string `json:"dinero"`
	Correos []string `json:"correos"`
}

// EntityGroups maps the five entity bucket labels to sorted unique entity texts.
type EntityGroups map[string][]string

// KeywordResult maps a category name to its ordered scored terms.
type KeywordResult map[string][]ScoredTerm

// SentimentResult is the outcome of a sentiment classification.
type SentimentResult struct {
	Sentimiento string  `json:"sentimiento"` // Positivo, Neutral or Negativo
	Confianza   float64 `json:"confianza"`
	Etiqueta    string  `json:"etiqueta"` // raw classifier label, e.g. "4 stars"
}

// AnalysisRecord is one archived invocation of an operation.
type AnalysisRecord struct {
	SessionID string    `json:"session_id"`
	Operation string    `json:"operation"`
	Input     string    `json:"input"`
	Result    any       `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}
