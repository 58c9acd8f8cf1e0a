package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bootlang/internal/client/repositories/slots"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Options struct {
	Backend   string
	Path      string
	RedisAddr string
}

// OpenSlots returns the repository for opts.Backend and a function that
// releases it. An empty backend selects SQLite.
func OpenSlots(ctx context.Context, opts Options) (slots.Repository, func() error, error) {
	switch opts.Backend {
	case "", BackendSQLite:
		db, err := InitDatabase(ctx, opts.Path)
		if err != nil {
			return nil, nil, err
		}
		return slots.NewSQLiteRepository(db), db.Close, nil
	case BackendMemory:
		return slots.NewMemoryRepository(), func() error { return nil }, nil
	case BackendRedis:
		if opts.RedisAddr == "" {
			return nil, nil, fmt.Errorf("redis backend requires an address")
		}
		repo := slots.NewRedisRepositoryFromAddr(opts.RedisAddr)
		return repo, repo.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
