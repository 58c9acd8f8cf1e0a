package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bootlang/internal/client/repositories/slots"
)

var errBackend = errors.New("backend down")

// failingRepo wraps a working repository and fails the selected operations.
type failingRepo struct {
	slots.Repository
	failGet, failSet, failDelete, failList bool
}

func (f *failingRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		return nil, errBackend
	}
	return f.Repository.Get(ctx, key)
}

func (f *failingRepo) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errBackend
	}
	return f.Repository.Set(ctx, key, value)
}

func (f *failingRepo) SetMany(ctx context.Context, values map[string][]byte) error {
	if f.failSet {
		return errBackend
	}
	return f.Repository.SetMany(ctx, values)
}

func (f *failingRepo) DeleteMany(ctx context.Context, keys ...string) error {
	if f.failDelete {
		return errBackend
	}
	return f.Repository.DeleteMany(ctx, keys...)
}

func (f *failingRepo) List(ctx context.Context) (map[string][]byte, error) {
	if f.failList {
		return nil, errBackend
	}
	return f.Repository.List(ctx)
}
