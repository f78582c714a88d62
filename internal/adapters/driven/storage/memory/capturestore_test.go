package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jobscope-cli/internal/core/domain"
)

func TestCaptureStore_RecordAndFind(t *testing.T) {
	store := NewCaptureStore()

	rec := &domain.CaptureRecord{
		ID:      "rec-1",
		JobURL:  "https://job.example/123",
		PageID:  "page-1",
		Company: "Acme",
	}
	require.NoError(t, store.Record(context.Background(), rec))

	found, err := store.FindByJobURL(context.Background(), "https://job.example/123")
	require.NoError(t, err)
	assert.Equal(t, "page-1", found.PageID)
	assert.Equal(t, "Acme", found.Company)
}

func TestCaptureStore_FindMissing(t *testing.T) {
	store := NewCaptureStore()

	_, err := store.FindByJobURL(context.Background(), "https://missing.example")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCaptureStore_Record_UpdateKeepsIdentity(t *testing.T) {
	store := NewCaptureStore()
	saved := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(context.Background(), &domain.CaptureRecord{
		ID:      "rec-1",
		JobURL:  "https://job.example/123",
		PageID:  "page-1",
		SavedAt: saved,
	}))
	require.NoError(t, store.Record(context.Background(), &domain.CaptureRecord{
		ID:      "rec-2",
		JobURL:  "https://job.example/123",
		PageID:  "page-1",
		Company: "Acme",
		SavedAt: time.Now(),
	}))

	found, err := store.FindByJobURL(context.Background(), "https://job.example/123")
	require.NoError(t, err)
	assert.Equal(t, "rec-1", found.ID)
	assert.Equal(t, saved, found.SavedAt)
	assert.Equal(t, "Acme", found.Company)
}

func TestCaptureStore_Record_RequiresJobURL(t *testing.T) {
	store := NewCaptureStore()

	assert.ErrorIs(t, store.Record(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Record(context.Background(), &domain.CaptureRecord{}), domain.ErrInvalidInput)
}

func TestCaptureStore_List_OrderAndLimit(t *testing.T) {
	store := NewCaptureStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, url := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		require.NoError(t, store.Record(context.Background(), &domain.CaptureRecord{
			ID:        url,
			JobURL:    url,
			UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	records, err := store.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "https://c.example", records[0].JobURL)
	assert.Equal(t, "https://b.example", records[1].JobURL)
}
