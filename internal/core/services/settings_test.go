package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/samediff/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/samediff/internal/core/domain"
)

func TestSettingsService_Defaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAnalysisSettings(), service.Analysis())
	assert.Equal(t, domain.DefaultWatchIntervalMs, service.WatchInterval())
	assert.Equal(t, ":memory:", service.ConfigPath())
}

func TestSettingsService_StoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		KeyStopwords:        []any{"the", "a"},
		KeyDefaultStopwords: true,
		KeyTopTerms:         int64(5),
		KeyWatchInterval:    int64(1000),
	})
	service := NewSettingsService(store)

	settings := service.Analysis()
	assert.Equal(t, []string{"the", "a"}, settings.Stopwords)
	assert.True(t, settings.DefaultStopwords)
	assert.Equal(t, 5, settings.TopTerms)
	assert.Equal(t, 1000, service.WatchInterval())
}

func TestSettingsService_SetStopwords(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetStopwords([]string{" The ", "and", "the", ""}))
	assert.Equal(t, []string{"the", "and"}, store.GetStringSlice(KeyStopwords))
	assert.Equal(t, []string{"the", "and"}, service.Analysis().Stopwords)
}

func TestSettingsService_SetDefaultStopwords(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetDefaultStopwords(true))
	assert.True(t, service.Analysis().DefaultStopwords)
	require.NoError(t, service.SetDefaultStopwords(false))
	assert.False(t, service.Analysis().DefaultStopwords)
}

func TestSettingsService_SetTopTerms(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetTopTerms(3))
	assert.Equal(t, 3, service.Analysis().TopTerms)

	err := service.SetTopTerms(0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 3, service.Analysis().TopTerms)
}

func TestSettingsService_NilStore(t *testing.T) {
	service := NewSettingsService(nil)

	assert.Equal(t, domain.DefaultAnalysisSettings(), service.Analysis())
	assert.Equal(t, domain.DefaultWatchIntervalMs, service.WatchInterval())
	assert.Empty(t, service.ConfigPath())
	assert.ErrorIs(t, service.SetStopwords([]string{"x"}), domain.ErrNotImplemented)
	assert.ErrorIs(t, service.SetDefaultStopwords(true), domain.ErrNotImplemented)
	assert.ErrorIs(t, service.SetTopTerms(1), domain.ErrNotImplemented)
}
