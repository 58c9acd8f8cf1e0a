package slots

import (
	"context"
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryRepository keeps slots for the lifetime of the process.
type MemoryRepository struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{cache: gocache.New(gocache.NoExpiration, gocache.NoExpiration)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.cache.Get(key)
	if !ok {
		return nil, nil
	}
	return clone(v.([]byte)), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Set(key, clone(value), gocache.NoExpiration)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(key)
	return nil
}

func (r *MemoryRepository) SetMany(_ context.Context, values map[string][]byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range values {
		r.cache.Set(k, clone(v), gocache.NoExpiration)
	}
	return nil
}

func (r *MemoryRepository) DeleteMany(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		r.cache.Delete(k)
	}
	return nil
}

func (r *MemoryRepository) List(_ context.Context) (map[string][]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.cache.Items()
	result := make(map[string][]byte, len(items))
	for k, item := range items {
		result[k] = clone(item.Object.([]byte))
	}
	return result, nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Flush()
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
