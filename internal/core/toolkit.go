package core

import (
	"context"
	"fmt"
	"time"

	"analizador/internal/analyzer"
	"analizador/internal/config"
	"analizador/internal/sentiment"
	"analizador/internal/session"
	"analizador/internal/storage"
	"analizador/pkg"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Operation names as they appear in session logs and archives.
const (
	OpNormalizador = "Normalizador de texto"
	OpPatrones     = "Buscar patrones"
	OpResumen      = "Resumen simple"
	OpEntidades    = "Extracción de entidades"
	OpPalabras     = "Palabras clave"
	OpSentimiento  = "Análisis de sentimiento"
)

// Toolkit wires the analysis operations to session logging, history and
// archival. One Toolkit is one user session.
type Toolkit struct {
	sessionID  string
	analyzer   *analyzer.Analyzer
	classifier sentiment.Classifier
	fallback   sentiment.Classifier
	sessionLog *session.Logger
	history    session.HistoryStore
	archive    storage.ArchiveManager
}

// NewToolkit assembles a session-scoped toolkit from the configuration.
// The chat-model classifier is only built when an API key is present; the
// lexicon classifier always stands by as fallback.
func NewToolkit(ctx context.Context, cfg *config.Config) (*Toolkit, error) {
	sessionLog, err := session.NewLogger(cfg.Session.LogsDir)
	if err != nil {
		return nil, fmt.Errorf("error creating session logger: %v", err)
	}

	var history session.HistoryStore
	if cfg.Session.RedisURL != "" {
		redisHistory, err := session.NewRedisHistory(ctx, cfg.Session.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, keeping history in memory")
			history = session.NewMemoryHistory()
		} else {
			history = redisHistory
		}
	} else {
		history = session.NewMemoryHistory()
	}

	var classifier sentiment.Classifier
	if cfg.Sentiment.APIKey != "" || cfg.Sentiment.Provider == "ollama" {
		llm, err := sentiment.NewLLMClassifier(ctx, cfg.Sentiment)
		if err != nil {
			log.Warn().Err(err).Msg("chat model unavailable, using lexicon classifier")
		} else {
			classifier = llm
		}
	}

	return &Toolkit{
		sessionID:  uuid.New().String(),
		analyzer:   analyzer.New(cfg.Analyzer, nil),
		classifier: classifier,
		fallback:   sentiment.NewLexiconClassifier(),
		sessionLog: sessionLog,
		history:    history,
		archive:    storage.NewJSONArchiveManager(cfg.Session.ArchiveDir),
	}, nil
}

// SessionID returns the identifier of this session.
func (t *Toolkit) SessionID() string {
	return t.sessionID
}

// LogFile returns the path of the session log file.
func (t *Toolkit) LogFile() string {
	return t.sessionLog.Filename()
}

// record logs the operation and stores it in history and archive. Storage
// failures are logged, not surfaced; the analysis result already stands.
func (t *Toolkit) record(ctx context.Context, operation, input string, logResult, result any) {
	if err := t.sessionLog.Log(operation, input, logResult); err != nil {
		log.Warn().Err(err).Msg("failed to write session log entry")
	}

	rec := pkg.AnalysisRecord{
		SessionID: t.sessionID,
		Operation: operation,
		Input:     snippet(input),
		Result:    result,
		Timestamp: time.Now(),
	}
	if err := t.history.Append(ctx, rec); err != nil {
		log.Warn().Err(err).Msg("failed to append session history")
	}
	if err := t.archive.SaveRecord(rec); err != nil {
		log.Warn().Err(err).Msg("failed to archive record")
	}
}

// Normalize runs the text normalizer. Returns nil for empty input.
func (t *Toolkit) Normalize(ctx context.Context, text string) *pkg.NormalizationResult {
	result := t.analyzer.Normalize(text)
	if result == nil {
		return nil
	}
	t.record(ctx, OpNormalizador, text, map[string]any{
		"original":         result.Original,
		"lematizado":       result.Lematizado,
		"sin_repeticiones": result.SinRepeticiones,
		"corregido":        result.Corregido,
	}, result)
	return result
}

// FindPatterns extracts dates, money and email addresses.
func (t *Toolkit) FindPatterns(ctx context.Context, text string) *pkg.PatternMatches {
	result := t.analyzer.ExtractPatterns(text)
	t.record(ctx, OpPatrones, text, map[string][]string{
		"Fechas":  result.Fechas,
		"Dinero":  result.Dinero,
		"Correos": result.Correos,
	}, result)
	return result
}

// Summarize produces the extractive summary.
func (t *Toolkit) Summarize(ctx context.Context, text string) (string, error) {
	result, err := t.analyzer.Summarize(text)
	if err != nil {
		return "", fmt.Errorf("error generating summary: %v", err)
	}
	t.record(ctx, OpResumen, text, result, result)
	return result, nil
}

// Entities groups named entities into the fixed buckets.
func (t *Toolkit) Entities(ctx context.Context, text string) (pkg.EntityGroups, error) {
	result, err := t.analyzer.Entities(text)
	if err != nil {
		return nil, fmt.Errorf("error extracting entities: %v", err)
	}
	t.record(ctx, OpEntidades, text, map[string][]string(result), result)
	return result, nil
}

// Keywords extracts top words, nouns, verbs and key phrases.
func (t *Toolkit) Keywords(ctx context.Context, text string) (pkg.KeywordResult, error) {
	result, err := t.analyzer.Keywords(text)
	if err != nil {
		return nil, fmt.Errorf("error extracting keywords: %v", err)
	}
	if result == nil {
		return nil, nil
	}

	logResult := make(map[string]any, len(result))
	for category, terms := range result {
		items := make([]any, 0, len(terms))
		for _, term := range terms {
			items = append(items, fmt.Sprintf("%s (%g)", term.Text, term.Score))
		}
		logResult[category] = items
	}
	t.record(ctx, OpPalabras, text, logResult, result)
	return result, nil
}

// Sentiment classifies the text, preferring the chat model and falling back
// to the lexicon when the model is missing or fails.
func (t *Toolkit) Sentiment(ctx context.Context, text string) (*pkg.SentimentResult, error) {
	var result *pkg.SentimentResult
	var err error

	if t.classifier != nil {
		result, err = t.classifier.Classify(ctx, text)
		if err != nil {
			log.Warn().Err(err).Str("classifier", t.classifier.GetName()).
				Msg("classifier failed, using fallback")
		}
	}
	if result == nil {
		result, err = t.fallback.Classify(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("error classifying sentiment: %v", err)
		}
	}

	t.record(ctx, OpSentimiento, text, map[string]any{
		"sentimiento": result.Sentimiento,
		"confianza":   fmt.Sprintf("%.3f", result.Confianza),
		"etiqueta":    result.Etiqueta,
	}, result)
	return result, nil
}

// snippet truncates the stored input to 100 runes, matching the session log.
func snippet(s string) string {
	runes := []rune(s)
	if len(runes) <= 100 {
		return s
	}
	return string(runes[:100]) + "..."
}

// History returns the analysis records of this session.
func (t *Toolkit) History(ctx context.Context) ([]pkg.AnalysisRecord, error) {
	return t.history.Load(ctx, t.sessionID)
}
