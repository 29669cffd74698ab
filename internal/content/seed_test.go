package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const servicesSeed = `[
  {"title": "Design", "desc": "d1"},
  {"title": "Development", "desc": "d2"},
  {"title": "Marketing", "desc": "d3"}
]`

func TestLoadOrSeed_AssignsSequentialIDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "services.json")
	require.NoError(t, os.WriteFile(path, []byte(servicesSeed), 0o644))

	ctx := context.Background()
	store := NewMemoryStore()
	seeder := NewSeeder(store, dir)

	docs, err := seeder.LoadOrSeed(ctx, "services", "services.json")
	require.NoError(t, err)
	require.Len(t, docs, 3)
	for i, d := range docs {
		id, ok := asInt(d["id"])
		require.True(t, ok)
		require.Equal(t, i+1, id)
	}

	// the seed file is read at most once: mutating it after the first load
	// must not change what subsequent reads return
	require.NoError(t, os.WriteFile(path, []byte(`[{"title": "Other", "desc": "x"}]`), 0o644))
	again, err := seeder.LoadOrSeed(ctx, "services", "services.json")
	require.NoError(t, err)
	require.Len(t, again, 3)
	require.Equal(t, "Design", again[0]["title"])
}

func TestLoadOrSeed_MissingFileEmptyCollection(t *testing.T) {
	seeder := NewSeeder(NewMemoryStore(), t.TempDir())
	docs, err := seeder.LoadOrSeed(context.Background(), "services", "services.json")
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestLoadOrSeed_NonEmptyCollectionSkipsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "services.json"), []byte(servicesSeed), 0o644))

	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Insert(ctx, "services", map[string]interface{}{"id": 1, "title": "existing"})
	require.NoError(t, err)

	docs, err := NewSeeder(store, dir).LoadOrSeed(ctx, "services", "services.json")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "existing", docs[0]["title"])
}

func TestLoadOrSeedSingleton(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.json"), []byte(`{"hero_title": "Hello"}`), 0o644))

	ctx := context.Background()
	store := NewMemoryStore()
	seeder := NewSeeder(store, dir)

	doc, err := seeder.LoadOrSeedSingleton(ctx, "home", "home.json")
	require.NoError(t, err)
	require.Equal(t, "Hello", doc["hero_title"])

	// persisted now; the store copy wins on the second read
	require.NoError(t, store.UpsertSingleton(ctx, "home", map[string]interface{}{"hero_title": "Changed"}))
	doc, err = seeder.LoadOrSeedSingleton(ctx, "home", "home.json")
	require.NoError(t, err)
	require.Equal(t, "Changed", doc["hero_title"])
}

func TestLoadOrSeedSingleton_Missing(t *testing.T) {
	seeder := NewSeeder(NewMemoryStore(), t.TempDir())
	_, err := seeder.LoadOrSeedSingleton(context.Background(), "home", "home.json")
	require.ErrorIs(t, err, ErrNotFound)
}
