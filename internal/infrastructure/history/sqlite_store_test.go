package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc25-uiux/uxai/internal/domain"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "h", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, store.Save(domain.HistoryRecord{
		Timestamp:   base,
		Description: "login form",
		Provider:    domain.ProviderFallback,
		Components:  []string{"Input", "Label"},
		Confidence:  0.7,
	}))
	require.NoError(t, store.Save(domain.HistoryRecord{
		Timestamp:   base.Add(time.Minute),
		Description: "users table",
		Provider:    domain.ProviderKiloCode,
		Components:  []string{"Table"},
		Confidence:  0.9,
	}))

	all, err := store.Records(0, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "users table", all[0].Description)
	assert.NotEmpty(t, all[0].ID)
	assert.Equal(t, []string{"Input", "Label"}, all[1].Components)
	assert.True(t, base.Equal(all[1].Timestamp))

	found, err := store.Records(10, "Label")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, domain.ProviderFallback, found[0].Provider)

	limited, err := store.Records(1, "")
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, store.Clear())
	all, err = store.Records(0, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}
