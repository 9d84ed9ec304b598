// Package repository persists the application's entities as whole JSON
// documents, one file per collection (users.json, topics.json,
// debates.json). Every operation is a full read-modify-write of its
// document, serialized by a per-store mutex so concurrent requests within
// this process cannot lose updates. Writers in other processes are not
// synchronized; run a single server instance against a data directory.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"debateapp/internal/middleware"
	"debateapp/internal/observability"
)

// store holds the shared mechanics of a single JSON document on disk.
type store struct {
	mu   sync.Mutex
	path string
	name string
}

func newStore(dataDir, filename, name string) (*store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &store{path: filepath.Join(dataDir, filename), name: name}, nil
}

// load reads the document into doc. A missing file leaves doc at its zero
// value so a fresh data directory bootstraps itself on first use.
func (s *store) load(ctx context.Context, doc any) error {
	observability.StoreOperations.WithLabelValues(s.name, "read").Inc()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return s.fail(ctx, "read", err)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return s.fail(ctx, "read", err)
	}
	return nil
}

// save atomically replaces the document on disk: marshal, write to a temp
// file in the same directory, then rename over the target. Readers never
// observe a partially written document.
func (s *store) save(ctx context.Context, doc any) error {
	observability.StoreOperations.WithLabelValues(s.name, "write").Inc()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return s.fail(ctx, "write", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return s.fail(ctx, "write", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return s.fail(ctx, "write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return s.fail(ctx, "write", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return s.fail(ctx, "write", err)
	}
	return nil
}

func (s *store) fail(ctx context.Context, operation string, err error) error {
	observability.StoreErrors.WithLabelValues(s.name, operation).Inc()
	middleware.Logger.ErrorContext(ctx, "document store error",
		"store", s.name,
		"operation", operation,
		"path", s.path,
		"error", err.Error(),
	)
	return fmt.Errorf("%s store %s: %w", s.name, operation, err)
}
