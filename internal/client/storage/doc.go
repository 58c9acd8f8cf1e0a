// Package storage opens the slot backend selected by configuration.
//
// The SQLite backend is migrated with goose from the embedded migrations on
// every start; the memory and Redis backends need no schema.
package storage
