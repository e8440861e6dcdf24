package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

func TestReportStore_SaveGet(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()

	record := &domain.ReportRecord{ID: "r1", Status: domain.ReportPending, Names: []string{"a", "b"}}
	require.NoError(t, store.Save(ctx, record))

	record.Names[0] = "mutated"

	got, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReportPending, got.Status)
	assert.Equal(t, []string{"a", "b"}, got.Names)

	record.Status = domain.ReportComplete
	require.NoError(t, store.Save(ctx, record))
	got, err = store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReportComplete, got.Status)
}

func TestReportStore_NotFound(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "missing"), domain.ErrNotFound)
}

func TestReportStore_ListNewestFirst(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, &domain.ReportRecord{ID: "old", CreatedAt: base}))
	require.NoError(t, store.Save(ctx, &domain.ReportRecord{ID: "new", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, &domain.ReportRecord{ID: "mid", CreatedAt: base.Add(time.Minute)}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "mid", list[1].ID)
	assert.Equal(t, "old", list[2].ID)
}

func TestReportStore_Delete(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.ReportRecord{ID: "r1"}))
	require.NoError(t, store.Delete(ctx, "r1"))

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
