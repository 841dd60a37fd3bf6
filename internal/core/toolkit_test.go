package core

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"analizador/internal/analyzer"
	"analizador/internal/sentiment"
	"analizador/internal/session"
	"analizador/internal/storage"
)

type stubPipeline struct{}

func (stubPipeline) Sentences(text string) ([]string, error) {
	var out []string
	for _, s := range strings.Split(text, ".") {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t+".")
		}
	}
	return out, nil
}

func (stubPipeline) Tokens(text string) ([]analyzer.Token, error) {
	var out []analyzer.Token
	for _, w := range strings.Fields(text) {
		out = append(out, analyzer.Token{Text: strings.Trim(w, ".,"), Tag: "NN"})
	}
	return out, nil
}

func (stubPipeline) Entities(string) ([]analyzer.Entity, error) {
	return nil, nil
}

func newTestToolkit(t *testing.T) *Toolkit {
	t.Helper()
	sessionLog, err := session.NewLogger(t.TempDir())
	require.NoError(t, err)

	return &Toolkit{
		sessionID:  "test-session",
		analyzer:   analyzer.New(analyzer.Config{}, stubPipeline{}),
		fallback:   sentiment.NewLexiconClassifier(),
		sessionLog: sessionLog,
		history:    session.NewMemoryHistory(),
		archive:    storage.NewJSONArchiveManager(t.TempDir()),
	}
}

func TestToolkitNormalizeRecordsHistory(t *testing.T) {
	tk := newTestToolkit(t)
	ctx := context.Background()

	result := tk.Normalize(ctx, "hola hola mundo")
	require.NotNil(t, result)
	assert.Equal(t, "hola mundo", result.SinRepeticiones)

	records, err := tk.History(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, OpNormalizador, records[0].Operation)
	assert.Equal(t, "test-session", records[0].SessionID)
}

func TestToolkitNormalizeEmptyNotRecorded(t *testing.T) {
	tk := newTestToolkit(t)
	ctx := context.Background()

	assert.Nil(t, tk.Normalize(ctx, "   "))

	records, err := tk.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestToolkitFindPatterns(t *testing.T) {
	tk := newTestToolkit(t)

	result := tk.FindPatterns(context.Background(), "Reunión el 01/02/2024, presupuesto 500 euros, contacto ana@ejemplo.es")
	assert.Equal(t, []string{"01/02/2024"}, result.Fechas)
	assert.Equal(t, []string{"500 euros"}, result.Dinero)
	assert.Equal(t, []string{"ana@ejemplo.es"}, result.Correos)
}

func TestToolkitSentimentFallsBackToLexicon(t *testing.T) {
	tk := newTestToolkit(t)

	result, err := tk.Sentiment(context.Background(), "Un día maravilloso y perfecto.")
	require.NoError(t, err)
	assert.Equal(t, "Positivo", result.Sentimiento)
}

func TestToolkitOperationsShareSession(t *testing.T) {
	tk := newTestToolkit(t)
	ctx := context.Background()

	tk.FindPatterns(ctx, "sin fechas")
	_, err := tk.Sentiment(ctx, "bueno")
	require.NoError(t, err)

	records, err := tk.History(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, OpPatrones, records[0].Operation)
	assert.Equal(t, OpSentimiento, records[1].Operation)
}
