package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"analizador/pkg"
)

func TestMemoryHistoryAppendAndLoad(t *testing.T) {
	store := NewMemoryHistory()
	ctx := context.Background()

	records, err := store.Load(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, records)

	record := pkg.AnalysisRecord{
		SessionID: "abc",
		Operation: "normalizador",
		Input:     "hola",
		Result:    "hola",
		Timestamp: time.Now(),
	}
	require.NoError(t, store.Append(ctx, record))

	records, err = store.Load(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "normalizador", records[0].Operation)
}

func TestMemoryHistoryRejectsEmptySession(t *testing.T) {
	store := NewMemoryHistory()
	err := store.Append(context.Background(), pkg.AnalysisRecord{Operation: "resumen"})
	assert.Error(t, err)
}

func TestMemoryHistoryClear(t *testing.T) {
	store := NewMemoryHistory()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, pkg.AnalysisRecord{SessionID: "abc", Operation: "patrones"}))
	require.NoError(t, store.Clear(ctx, "abc"))

	records, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, records)
}
