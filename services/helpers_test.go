package services

import (
	"context"
	"fmt"
	"time"

	"ClinicRecords/auth"
	"ClinicRecords/store"

	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.Local)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testHasher() auth.Hasher {
	return auth.NewBcrypt(bcrypt.MinCost)
}

// downStore fails every call the way an unreachable database does.
type downStore struct{}

func (downStore) err(op string) error {
	return fmt.Errorf("%w: %s: connection refused", store.ErrUnavailable, op)
}

func (s downStore) Get(ctx context.Context, collection, key string) (store.Document, bool, error) {
	return nil, false, s.err("get")
}

func (s downStore) Put(ctx context.Context, collection, key string, doc store.Document) error {
	return s.err("put")
}

func (s downStore) Merge(ctx context.Context, collection, key string, partial store.Document) error {
	return s.err("merge")
}

func (s downStore) Delete(ctx context.Context, collection, key string) error {
	return s.err("delete")
}

func (s downStore) QueryEqual(ctx context.Context, collection string, preds ...store.Predicate) ([]store.Record, error) {
	return nil, s.err("query")
}

// countingStore records writes so tests can assert nothing was written.
type countingStore struct {
	*store.MemoryStore
	writes int
}

func (s *countingStore) Put(ctx context.Context, collection, key string, doc store.Document) error {
	s.writes++
	return s.MemoryStore.Put(ctx, collection, key, doc)
}

func (s *countingStore) Merge(ctx context.Context, collection, key string, partial store.Document) error {
	s.writes++
	return s.MemoryStore.Merge(ctx, collection, key, partial)
}
