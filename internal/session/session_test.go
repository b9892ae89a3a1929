package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_ReadsStorageOnOpen(t *testing.T) {
	slot, err := Open(NewMemoryStorage("persisted"))

	require.NoError(t, err)
	assert.Equal(t, "persisted", slot.Token())
}

func TestSlot_SetAndClear(t *testing.T) {
	storage := NewMemoryStorage("")
	slot, err := Open(storage)
	require.NoError(t, err)

	require.NoError(t, slot.Set("abc"))
	stored, _ := storage.Load()
	assert.Equal(t, "abc", stored)
	assert.Equal(t, "abc", slot.Token())

	require.NoError(t, slot.Clear())
	require.NoError(t, slot.Clear())
	stored, _ = storage.Load()
	assert.Empty(t, stored)
	assert.Empty(t, slot.Token())
}

type brokenStorage struct{ MemoryStorage }

func (b *brokenStorage) Save(string) error { return errors.New("disk full") }
func (b *brokenStorage) Delete() error     { return errors.New("disk full") }

func TestSlot_StorageFailures(t *testing.T) {
	storage := &brokenStorage{}
	storage.token = "old"
	slot, err := Open(storage)
	require.NoError(t, err)

	assert.Error(t, slot.Set("new"))
	assert.Equal(t, "old", slot.Token())

	assert.Error(t, slot.Clear())
	assert.Empty(t, slot.Token())
}

func TestBoltStorage_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	first, err := NewBoltStorage(path)
	require.NoError(t, err)
	slot, err := Open(first)
	require.NoError(t, err)
	assert.Empty(t, slot.Token())
	require.NoError(t, slot.Set("jwt-token"))
	require.NoError(t, first.Close())

	second, err := NewBoltStorage(path)
	require.NoError(t, err)
	reopened, err := Open(second)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", reopened.Token())

	require.NoError(t, reopened.Clear())
	token, err := second.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	require.NoError(t, second.Close())
}

func TestNewBoltStorage_RequiresPath(t *testing.T) {
	_, err := NewBoltStorage("  ")
	assert.Error(t, err)
}
