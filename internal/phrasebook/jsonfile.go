package phrasebook

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	svcerr "github.com/indictext/lipi/internal/errors"
)

// JSONFileStore keeps the phrasebook as a single pretty-printed JSON array
// on disk, newest entry first. A mutex serializes access; the file is the
// only mutable state in the process.
type JSONFileStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONFileStore opens (and if needed creates) the phrasebook file.
func NewJSONFileStore(path string) (*JSONFileStore, error) {
	s := &JSONFileStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write([]Entry{}); err != nil {
			return nil, fmt.Errorf("failed to create phrasebook file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat phrasebook file: %w", err)
	}
	return s, nil
}

// Save stores a phrase at the head of the list.
func (s *JSONFileStore) Save(_ context.Context, title, text, src, tgt string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return Entry{}, svcerr.NewStoreFailed("save", err)
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Title:     title,
		Text:      text,
		Src:       src,
		Tgt:       tgt,
		CreatedAt: time.Now().UTC(),
	}

	entries = append([]Entry{entry}, entries...)
	if err := s.write(entries); err != nil {
		return Entry{}, svcerr.NewStoreFailed("save", err)
	}
	return entry, nil
}

// List returns all phrases, newest first.
func (s *JSONFileStore) List(_ context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, svcerr.NewStoreFailed("list", err)
	}
	return entries, nil
}

// Get returns the phrase with the given id.
func (s *JSONFileStore) Get(_ context.Context, id string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return Entry{}, svcerr.NewStoreFailed("get", err)
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, svcerr.NewNotFound("phrase", id)
}

// Delete removes the phrase with the given id.
func (s *JSONFileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return svcerr.NewStoreFailed("delete", err)
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return svcerr.NewNotFound("phrase", id)
	}
	if err := s.write(kept); err != nil {
		return svcerr.NewStoreFailed("delete", err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *JSONFileStore) Close() error { return nil }

func (s *JSONFileStore) read() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("phrasebook file is corrupt: %w", err)
	}
	return entries, nil
}

func (s *JSONFileStore) write(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
