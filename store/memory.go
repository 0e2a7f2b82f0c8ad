package store

import (
	"context"
	"reflect"
	"sync"
)

// MemoryStore keeps collections in process memory. It is used by tests and by
// STORE_DRIVER=memory for local runs without a database.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]Document)}
}

func (m *MemoryStore) Get(ctx context.Context, collection, key string) (Document, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.collections[collection][key]
	if !ok {
		return nil, false, nil
	}
	return copyDocument(doc), true, nil
}

func (m *MemoryStore) Put(ctx context.Context, collection, key string, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collection(collection)[key] = copyDocument(doc)
	return nil
}

func (m *MemoryStore) Merge(ctx context.Context, collection, key string, partial Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	coll := m.collection(collection)
	existing, ok := coll[key]
	if !ok {
		existing = Document{}
	}
	coll[key] = mergeDocuments(existing, partial)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, collection, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections[collection], key)
	return nil
}

func (m *MemoryStore) QueryEqual(ctx context.Context, collection string, preds ...Predicate) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := []Record{}
	for key, doc := range m.collections[collection] {
		if matches(doc, preds) {
			records = append(records, Record{Key: key, Doc: copyDocument(doc)})
		}
	}
	return records, nil
}

func (m *MemoryStore) collection(name string) map[string]Document {
	coll, ok := m.collections[name]
	if !ok {
		coll = make(map[string]Document)
		m.collections[name] = coll
	}
	return coll
}

func matches(doc Document, preds []Predicate) bool {
	for _, p := range preds {
		v, ok := doc[p.Field]
		if !ok || !reflect.DeepEqual(v, p.Value) {
			return false
		}
	}
	return true
}

// mergeDocuments returns a copy of dst with src laid over it; sub-documents
// present on both sides merge recursively.
func mergeDocuments(dst, src Document) Document {
	out := copyDocument(dst)
	for k, v := range src {
		if sub, ok := asDocument(v); ok {
			if cur, ok := asDocument(out[k]); ok {
				out[k] = mergeDocuments(cur, sub)
				continue
			}
		}
		out[k] = copyValue(v)
	}
	return out
}

func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	if sub, ok := asDocument(v); ok {
		return copyDocument(sub)
	}
	if list, ok := v.([]interface{}); ok {
		out := make([]interface{}, len(list))
		for i, item := range list {
			out[i] = copyValue(item)
		}
		return out
	}
	return v
}
