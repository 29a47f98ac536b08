// Package storage owns the prospect document: a single JSON file holding the
// whole collection, kept in memory behind one lock with explicit load/flush
// boundaries. Every mutation rewrites the full document.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/daware/warmtrack/internal/entity"
)

type JSONStore struct {
	path string

	mu  sync.RWMutex
	doc *entity.Document
}

// Open loads the document at path, creating an empty one (and its parent
// directory) if the file does not exist yet.
func Open(path string) (*JSONStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &JSONStore{path: path, doc: &entity.Document{Prospects: []*entity.Prospect{}}}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := s.flush(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, s.doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if s.doc.Prospects == nil {
		s.doc.Prospects = []*entity.Prospect{}
	}
	return s, nil
}

// View runs fn read-only against the current document. fn must not retain or
// mutate the document.
func (s *JSONStore) View(ctx context.Context, fn func(doc *entity.Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.doc)
}

// Mutate serializes writers: fn mutates the in-memory document and the whole
// document is flushed only if fn returns nil, so a failed operation never
// partially persists.
func (s *JSONStore) Mutate(ctx context.Context, fn func(doc *entity.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.doc); err != nil {
		return err
	}
	return s.flush()
}

// flush writes the document atomically via a temp file rename.
// Caller holds the write lock.
func (s *JSONStore) flush() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Ping reports whether the backing file is still reachable.
func (s *JSONStore) Ping() error {
	_, err := os.Stat(s.path)
	return err
}
