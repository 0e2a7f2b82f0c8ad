package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// Cache holds recently read documents by cache key.
type Cache interface {
	Get(ctx context.Context, key string) (Document, bool, error)
	Set(ctx context.Context, key string, doc Document) error
	Delete(ctx context.Context, key string) error
}

// CachedStore serves Get from a Cache and drops the cached copy on every write.
// Queries always go to the wrapped store.
//
// A read that overlaps a write in this process does not fill the cache. Writes
// made by another process are only seen here once the cached copy expires.
type CachedStore struct {
	Store
	cache Cache

	mu          sync.Mutex
	generations map[string]uint64
}

func NewCachedStore(inner Store, cache Cache) *CachedStore {
	return &CachedStore{Store: inner, cache: cache, generations: map[string]uint64{}}
}

func (s *CachedStore) generation(ck string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[ck]
}

func (s *CachedStore) bump(ck string) {
	s.mu.Lock()
	s.generations[ck]++
	s.mu.Unlock()
}

func cacheKey(collection, key string) string {
	return collection + ":" + key
}

/*
* Try the cache first
* On a miss read the store and cache what was found
* Skip the fill when a write invalidated the key while the store was read
* Cache failures are logged, never returned
 */
func (s *CachedStore) Get(ctx context.Context, collection, key string) (Document, bool, error) {
	ck := cacheKey(collection, key)
	doc, ok, err := s.cache.Get(ctx, ck)
	if err != nil {
		log.Warn().Err(err).Str("key", ck).Msg("cache get failed")
	}
	if ok {
		return doc, true, nil
	}
	gen := s.generation(ck)
	doc, ok, err = s.Store.Get(ctx, collection, key)
	if err != nil || !ok {
		return doc, ok, err
	}
	if s.generation(ck) != gen {
		return doc, true, nil
	}
	if err := s.cache.Set(ctx, ck, doc); err != nil {
		log.Warn().Err(err).Str("key", ck).Msg("cache set failed")
	}
	return doc, true, nil
}

func (s *CachedStore) Put(ctx context.Context, collection, key string, doc Document) error {
	if err := s.Store.Put(ctx, collection, key, doc); err != nil {
		return err
	}
	s.invalidate(ctx, collection, key)
	return nil
}

func (s *CachedStore) Merge(ctx context.Context, collection, key string, partial Document) error {
	if err := s.Store.Merge(ctx, collection, key, partial); err != nil {
		return err
	}
	s.invalidate(ctx, collection, key)
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, collection, key string) error {
	if err := s.Store.Delete(ctx, collection, key); err != nil {
		return err
	}
	s.invalidate(ctx, collection, key)
	return nil
}

func (s *CachedStore) invalidate(ctx context.Context, collection, key string) {
	ck := cacheKey(collection, key)
	s.bump(ck)
	if err := s.cache.Delete(ctx, ck); err != nil {
		log.Warn().Err(err).Str("key", ck).Msg("cache delete failed")
	}
}

// RedisCache stores documents BSON-encoded so numeric types survive the round trip.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// DialRedis parses a redis:// url and checks the server answers.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (r *RedisCache) Get(ctx context.Context, key string) (Document, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, false, err
	}
	return Document(doc), true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, doc Document) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, raw, r.ttl).Err()
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
