// Package filex has small filesystem helpers shared by the client.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path. A path in the
// working directory needs nothing.
func EnsureParentDir(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReplaceFile writes path through a temporary file in the same directory
// and renames it over path once write succeeds. On failure path is left as
// it was.
func ReplaceFile(path string, write func(w io.Writer) (int64, error)) (int64, error) {
	if err := EnsureParentDir(path, 0o755); err != nil {
		return 0, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".bootlang-*")
	if err != nil {
		return 0, fmt.Errorf("create temp for %s: %w", path, err)
	}
	name := tmp.Name()

	n, err := write(tmp)
	if cerr := tmp.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", name, cerr)
	}
	if err == nil {
		if rerr := os.Rename(name, path); rerr != nil {
			err = fmt.Errorf("rename %s: %w", path, rerr)
		}
	}
	if err != nil {
		_ = os.Remove(name)
		return 0, err
	}
	return n, nil
}
