package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/iso4217/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store
}

func testCompilation() *domain.Compilation {
	two := uint8(2)
	return &domain.Compilation{
		Published:     "2026-01-01",
		TablesVersion: 1,
		Entries: []domain.CanonicalEntry{
			{Identifier: "Lek", AlphaCode: "ALL", Number: 8, Name: "Lek", MinorUnit: &two, Doc: " Lek (ALL, 8)"},
			{Identifier: "UsDollar", AlphaCode: "USD", Number: 840, Name: "US Dollar", MinorUnit: &two, Doc: " US Dollar (USD, 840)"},
			{Identifier: "Gold", AlphaCode: "XAU", Number: 959, Name: "Gold", Doc: " Gold (XAU, 959)"},
			{Identifier: "UsDollarNextDay", AlphaCode: "USN", Number: 997, Name: "US Dollar (Next day)", IsFund: true, MinorUnit: &two, Doc: " US Dollar (Next day) (USN, 997, Fund)"},
		},
		Associations: []domain.CountryAssociation{
			{CountryIdentifier: "Albania", CurrencyIdentifier: "Lek"},
			{CountryIdentifier: "Ecuador", CurrencyIdentifier: "UsDollar"},
			{CountryIdentifier: "UnitedStates", CurrencyIdentifier: "UsDollar"},
		},
		CountriesByNumber: map[uint16][]string{
			8:   {"ALBANIA"},
			840: {"ECUADOR", "UNITED STATES OF AMERICA (THE)"},
			959: {"ZZ08_Gold"},
			997: {"UNITED STATES OF AMERICA (THE)"},
		},
	}
}

func TestNewStore_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	path := filepath.Join(dir, "out.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, path, store.Path())
	_, err = os.Stat(path)
	assert.NoError(t, err)

	v, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestNewStore_Directory(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DefaultFilename), store.Path())
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}

func TestNewStore_ReopenSkipsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	first, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(context.Background(), testCompilation()))
	require.NoError(t, first.Close())

	second, err := NewStore(path)
	require.NoError(t, err)
	defer second.Close()

	v, err := second.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	c, err := second.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, c.Entries, 4)
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	want := testCompilation()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SaveReplaces(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testCompilation()))
	firstID, err := store.BuildID(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(firstID)
	require.NoError(t, err)

	smaller := testCompilation()
	smaller.Entries = smaller.Entries[:1]
	smaller.Associations = smaller.Associations[:1]
	smaller.CountriesByNumber = map[uint16][]string{8: {"ALBANIA"}}
	require.NoError(t, store.Save(ctx, smaller))

	secondID, err := store.BuildID(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, smaller, got)
}

func TestStore_EmptyDatabase(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.BuildID(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SaveRejectsDanglingAssociation(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testCompilation()))

	bad := testCompilation()
	bad.Associations = append(bad.Associations, domain.CountryAssociation{
		CountryIdentifier: "Atlantis", CurrencyIdentifier: "Orichalcum",
	})
	assert.Error(t, store.Save(ctx, bad))

	// The failed save rolled back; the previous build is intact.
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testCompilation(), got)
}

func TestStore_SaveNil(t *testing.T) {
	store := setupTestStore(t)
	assert.ErrorIs(t, store.Save(context.Background(), nil), domain.ErrInvalidInput)
}

func TestEmitter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emit.db")
	e := NewEmitter(path)

	assert.Equal(t, "sqlite", e.Name())
	require.NoError(t, e.Emit(context.Background(), testCompilation()))

	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCompilation(), got)
}
