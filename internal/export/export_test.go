package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grow-cli/grow/internal/storage"
)

func setupTestDB(t *testing.T) *storage.DB {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPairMarshalRoundTrip(t *testing.T) {
	value := `[{"id":"a"}]`
	pair := Pair{Key: "tasks", Value: &value}

	data, err := json.Marshal(pair)
	require.NoError(t, err)
	assert.JSONEq(t, `["tasks", "[{\"id\":\"a\"}]"]`, string(data))

	var back Pair
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, pair, back)
}

func TestPairMarshalAbsentValue(t *testing.T) {
	pair := Pair{Key: "missing"}

	data, err := json.Marshal(pair)
	require.NoError(t, err)
	assert.JSONEq(t, `["missing", null]`, string(data))

	var back Pair
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Nil(t, back.Value)
}

func TestSnapshotOnePairPerKey(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.SetBytes("tasks", []byte(`[{"id":"a"}]`)))
	require.NoError(t, db.SetBytes("journalEntries", []byte(`[]`)))

	pairs, err := Snapshot(db)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	byKey := make(map[string]*string)
	for _, p := range pairs {
		byKey[p.Key] = p.Value
	}
	require.Contains(t, byKey, "tasks")
	require.NotNil(t, byKey["tasks"])
	assert.Equal(t, `[{"id":"a"}]`, *byKey["tasks"])
	require.Contains(t, byKey, "journalEntries")
	assert.Equal(t, `[]`, *byKey["journalEntries"])
}

func TestSnapshotEmptyStore(t *testing.T) {
	db := setupTestDB(t)

	pairs, err := Snapshot(db)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestDocumentRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.SetBytes("tasks", []byte(`[{"id":"a","title":"x"}]`)))
	require.NoError(t, db.SetBytes("fitnessLogs", []byte(`[]`)))

	doc, err := Document(db)
	require.NoError(t, err)

	var pairs []Pair
	require.NoError(t, json.Unmarshal(doc, &pairs))

	want, err := Snapshot(db)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, pairs)
}

func TestWriteFile(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.SetBytes("tasks", []byte(`[]`)))

	path := filepath.Join(t.TempDir(), "out.json")
	got, err := WriteFile(db, path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var pairs []Pair
	require.NoError(t, json.Unmarshal(data, &pairs))
	require.Len(t, pairs, 1)
	assert.Equal(t, "tasks", pairs[0].Key)
}
