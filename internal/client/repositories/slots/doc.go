// Package slots provides key/value persistence for the client session.
//
// A slot is a named byte value (the bearer token, the serialized user).
// Three backends implement Repository:
//
//   - SQLiteRepository: local file, survives restarts (default)
//   - MemoryRepository: process lifetime only, backed by go-cache
//   - RedisRepository: shared between terminals, backed by go-redis
//
// Contract shared by all backends: Get returns (nil, nil) for a missing
// key, Delete and Clear are idempotent, SetMany and DeleteMany are atomic.
package slots
