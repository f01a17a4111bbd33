package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		err = db.Close()
		assert.NoError(t, err)
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.NotNil(t, db)
		db.Close()
	})
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "grow")
	assert.Contains(t, path, "db")
}

func TestSetGetBytes(t *testing.T) {
	db := setupTestDB(t)

	err := db.SetBytes("tasks", []byte(`[]`))
	require.NoError(t, err)

	data, err := db.GetBytes("tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestGetBytesNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetBytes("nonexistent")
	assert.Error(t, err)
	assert.True(t, IsErrKeyNotFound(err))
}

func TestDeleteKey(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SetBytes("tasks", []byte(`[]`)))
	require.NoError(t, db.DeleteKey("tasks"))

	_, err := db.GetBytes("tasks")
	assert.True(t, IsErrKeyNotFound(err))
}

func TestDeleteKeyMissing(t *testing.T) {
	db := setupTestDB(t)

	// Deleting an absent key is not an error.
	assert.NoError(t, db.DeleteKey("nonexistent"))
}

func TestClear(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SetBytes("tasks", []byte(`[]`)))
	require.NoError(t, db.SetBytes("codingLogs", []byte(`[]`)))

	require.NoError(t, db.Clear())

	keys, err := db.ListKeys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestListKeys(t *testing.T) {
	db := setupTestDB(t)

	keys, err := db.ListKeys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, db.SetBytes("tasks", []byte(`[]`)))
	require.NoError(t, db.SetBytes("fitnessLogs", []byte(`[]`)))
	require.NoError(t, db.SetBytes("journalEntries", []byte(`[]`)))

	keys, err = db.ListKeys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tasks", "fitnessLogs", "journalEntries"}, keys)
}

func TestGetMany(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SetBytes("tasks", []byte(`[{"id":"a"}]`)))
	require.NoError(t, db.SetBytes("codingLogs", []byte(`[]`)))

	kvs, err := db.GetMany([]string{"tasks", "missing", "codingLogs"})
	require.NoError(t, err)
	require.Len(t, kvs, 3)

	assert.Equal(t, "tasks", kvs[0].Key)
	require.NotNil(t, kvs[0].Value)
	assert.Equal(t, `[{"id":"a"}]`, *kvs[0].Value)

	assert.Equal(t, "missing", kvs[1].Key)
	assert.Nil(t, kvs[1].Value)

	assert.Equal(t, "codingLogs", kvs[2].Key)
	require.NotNil(t, kvs[2].Value)
	assert.Equal(t, `[]`, *kvs[2].Value)
}
