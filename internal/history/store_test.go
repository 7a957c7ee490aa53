package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/intermittent/are-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlyEntry(benefit string) domain.HistoryEntry {
	monthly := decimal.RequireFromString(benefit)
	return domain.HistoryEntry{
		RecordedAt:       time.Date(2025, 4, 30, 18, 0, 0, 0, time.UTC),
		Kind:             domain.KindMonthly,
		Category:         domain.Technician,
		Cachets:          2,
		RehearsalCachets: 1,
		Hours:            decimal.RequireFromString("143.5"),
		DailyBenefit:     decimal.RequireFromString("49.70"),
		MonthlyBenefit:   &monthly,
		ContractDetails:  "143h à 11.61€/h",
	}
}

func benefitEntry() domain.HistoryEntry {
	salary := decimal.RequireFromString("8536.59")
	return domain.HistoryEntry{
		RecordedAt:      time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC),
		Kind:            domain.KindBenefit,
		Category:        domain.Artist,
		Cachets:         61,
		Hours:           decimal.NewFromInt(732),
		ReferenceSalary: &salary,
		DailyBenefit:    decimal.RequireFromString("49.87"),
	}
}

func runStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	first, err := store.Append(ctx, monthlyEntry("198.80"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := store.Append(ctx, benefitEntry())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID, "insertion order is kept")
	assert.Equal(t, second.ID, entries[1].ID)

	got, err := store.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindMonthly, got.Kind)
	assert.Equal(t, domain.Technician, got.Category)
	assert.Equal(t, 1, got.RehearsalCachets)
	assert.True(t, got.Hours.Equal(decimal.RequireFromString("143.5")))
	assert.True(t, got.RecordedAt.Equal(first.RecordedAt))
	assert.Nil(t, got.ReferenceSalary)
	require.NotNil(t, got.MonthlyBenefit)
	assert.True(t, got.MonthlyBenefit.Equal(decimal.RequireFromString("198.80")))
	assert.Equal(t, "143h à 11.61€/h", got.ContractDetails)

	got, err = store.Get(ctx, second.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ReferenceSalary)
	assert.True(t, got.ReferenceSalary.Equal(decimal.RequireFromString("8536.59")))
	assert.Nil(t, got.MonthlyBenefit)

	// rows are freely editable
	edited := first
	corrected := decimal.RequireFromString("250.00")
	edited.MonthlyBenefit = &corrected
	edited.Cachets = 3
	require.NoError(t, store.Update(ctx, edited))
	got, err = store.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Cachets)
	assert.True(t, got.MonthlyBenefit.Equal(corrected))

	require.NoError(t, store.Delete(ctx, first.ID))
	entries, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)

	_, err = store.Get(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, first.ID), ErrNotFound)
	assert.ErrorIs(t, store.Update(ctx, domain.HistoryEntry{ID: "missing"}), ErrNotFound)

	// a caller-provided ID is kept
	withID := benefitEntry()
	withID.ID = "fixed-id"
	stored, err := store.Append(ctx, withID)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", stored.ID)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()
	defer store.Close()
	runStoreContract(t, store)
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLite(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()
	runStoreContract(t, store)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	store, err := NewSQLite(path)
	require.NoError(t, err)
	saved, err := store.Append(ctx, benefitEntry())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, saved.ID, entries[0].ID)
}

func TestMemoryListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	_, err := store.Append(ctx, benefitEntry())
	require.NoError(t, err)

	entries, err := store.List(ctx)
	require.NoError(t, err)
	entries[0].Cachets = 999

	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 61, again[0].Cachets)
}

func TestOpen(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, store)

	store, err = Open(MemoryPath)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, store)

	store, err = Open(filepath.Join(t.TempDir(), "h.db"))
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &SQLite{}, store)
}
