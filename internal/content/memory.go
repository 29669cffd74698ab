package content

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used by unit tests. It keeps the same
// loose bson.M document shape and identifier conventions as the Mongo
// implementation, including hex-string native ids.
type MemoryStore struct {
	mu   sync.RWMutex
	cols map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cols: make(map[string][]bson.M)}
}

func (m *MemoryStore) List(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []bson.M{}
	for _, d := range m.cols[collection] {
		if matches(d, filter) {
			out = append(out, clone(d))
		}
	}
	return out, nil
}

func (m *MemoryStore) ListNewest(ctx context.Context, collection string) ([]bson.M, error) {
	docs, err := m.List(ctx, collection, bson.M{})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return asTime(docs[i]["created_at"]).After(asTime(docs[j]["created_at"]))
	})
	return docs, nil
}

func (m *MemoryStore) FindByRef(ctx context.Context, collection string, ref Ref) (bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.cols[collection] {
		if refMatches(d, ref) {
			return clone(d), nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) FindSingleton(ctx context.Context, collection string) (bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if docs := m.cols[collection]; len(docs) > 0 {
		return clone(docs[0]), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) NextID(ctx context.Context, collection string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	max := 0
	for _, d := range m.cols[collection] {
		if id, ok := asInt(d["id"]); ok && id > max {
			max = id
		}
	}
	return max + 1, nil
}

func (m *MemoryStore) Insert(ctx context.Context, collection string, doc bson.M) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := clone(doc)
	if _, ok := d["_id"]; !ok {
		d["_id"] = primitive.NewObjectID().Hex()
	}
	m.cols[collection] = append(m.cols[collection], d)
	return d["_id"].(string), nil
}

func (m *MemoryStore) InsertMany(ctx context.Context, collection string, docs []bson.M) error {
	for _, d := range docs {
		if _, err := m.Insert(ctx, collection, d); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryStore) UpdateByRef(ctx context.Context, collection string, ref Ref, set bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.cols[collection] {
		if refMatches(d, ref) {
			for k, v := range set {
				d[k] = v
			}
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteByRef(ctx context.Context, collection string, ref Ref) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.cols[collection]
	for i, d := range docs {
		if refMatches(d, ref) {
			m.cols[collection] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) UpsertSingleton(ctx context.Context, collection string, set bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if docs := m.cols[collection]; len(docs) > 0 {
		for k, v := range set {
			docs[0][k] = v
		}
		return nil
	}
	d := clone(set)
	d["_id"] = primitive.NewObjectID().Hex()
	m.cols[collection] = append(m.cols[collection], d)
	return nil
}

func (m *MemoryStore) ReplaceSingleton(ctx context.Context, collection string, doc bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := clone(doc)
	if docs := m.cols[collection]; len(docs) > 0 {
		d["_id"] = docs[0]["_id"]
		m.cols[collection][0] = d
		return nil
	}
	d["_id"] = primitive.NewObjectID().Hex()
	m.cols[collection] = append(m.cols[collection], d)
	return nil
}

func (m *MemoryStore) Distinct(ctx context.Context, collection, field string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := map[string]bool{}
	out := []string{}
	for _, d := range m.cols[collection] {
		if v, ok := d[field].(string); ok && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out, nil
}

func refMatches(d bson.M, ref Ref) bool {
	if ref.BySequential() {
		id, ok := asInt(d["id"])
		return ok && id == ref.Sequential()
	}
	return d["_id"] == ref.Native()
}

func matches(d bson.M, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(d[k], want) {
			return false
		}
	}
	return true
}

func clone(d bson.M) bson.M {
	out := make(bson.M, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func asTime(v interface{}) time.Time {
	if t, ok := v.(time.Time); ok {
		return t
	}
	return time.Time{}
}
