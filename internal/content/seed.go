package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeder lazily materializes bundled JSON fixtures into empty collections.
// The seed file is read at most once per collection lifetime: once the
// documents are persisted, subsequent reads see the store contents only.
type Seeder struct {
	store Store
	dir   string
}

func NewSeeder(store Store, dir string) *Seeder {
	return &Seeder{store: store, dir: dir}
}

// LoadOrSeed returns the collection contents. When the collection is empty
// it reads the named seed file (a JSON array without id fields), assigns
// id = index + 1 in file order, bulk-inserts, and re-reads. A missing seed
// file with an empty collection yields an empty slice, not an error.
// Concurrent first reads can both insert; the store enforces no uniqueness.
func (s *Seeder) LoadOrSeed(ctx context.Context, collection, filename string) ([]bson.M, error) {
	docs, err := s.store.List(ctx, collection, bson.M{})
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		return docs, nil
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return []bson.M{}, nil
		}
		return nil, err
	}
	var seeded []bson.M
	if err := json.Unmarshal(raw, &seeded); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", filename, err)
	}
	if len(seeded) == 0 {
		return []bson.M{}, nil
	}
	for i := range seeded {
		seeded[i]["id"] = i + 1
	}
	if err := s.store.InsertMany(ctx, collection, seeded); err != nil {
		return nil, err
	}
	return s.store.List(ctx, collection, bson.M{})
}

// LoadOrSeedSingleton is the singleton variant used by the home page: the
// seed file holds one JSON object and no id is assigned. ErrNotFound is
// returned when both the collection and the seed file are absent.
func (s *Seeder) LoadOrSeedSingleton(ctx context.Context, collection, filename string) (bson.M, error) {
	doc, err := s.store.FindSingleton(ctx, collection)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var seeded bson.M
	if err := json.Unmarshal(raw, &seeded); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", filename, err)
	}
	if _, err := s.store.Insert(ctx, collection, seeded); err != nil {
		return nil, err
	}
	return s.store.FindSingleton(ctx, collection)
}
