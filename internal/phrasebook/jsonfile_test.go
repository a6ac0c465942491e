package phrasebook

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	svcerr "github.com/indictext/lipi/internal/errors"
)

func newTestStore(t *testing.T) *JSONFileStore {
	t.Helper()
	s, err := NewJSONFileStore(filepath.Join(t.TempDir(), "phrasebooks.json"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestJSONFileStoreCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrasebooks.json")
	if _, err := NewJSONFileStore(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("new phrasebook file is not a JSON array: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty phrasebook, got %d entries", len(entries))
	}
}

func TestJSONFileStoreSaveListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Save(ctx, "greeting", "नमस्ते", "Devanagari", "Tamil")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Save(ctx, "thanks", "धन्यवाद", "Devanagari", "Telugu")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID {
		t.Fatalf("IDs must be unique, both %q", first.ID)
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Errorf("expected newest-first order, got %q then %q", entries[0].Title, entries[1].Title)
	}
}

func TestJSONFileStoreGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, "greeting", "வணக்கம்", "Tamil", "Devanagari")
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != "வணக்கம்" || got.Src != "Tamil" || got.Tgt != "Devanagari" {
		t.Errorf("unexpected entry %+v", got)
	}

	_, err = s.Get(ctx, "no-such-id")
	if svcerr.CodeOf(err) != svcerr.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestJSONFileStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, "greeting", "నమస్తే", "Telugu", "Tamil")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(ctx, saved.ID); err != nil {
		t.Fatal(err)
	}
	entries, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty phrasebook after delete, got %d", len(entries))
	}

	if err := s.Delete(ctx, saved.ID); svcerr.CodeOf(err) != svcerr.CodeNotFound {
		t.Errorf("expected NOT_FOUND on double delete, got %v", err)
	}
}

func TestJSONFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrasebooks.json")
	ctx := context.Background()

	s1, err := NewJSONFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	saved, err := s1.Save(ctx, "greeting", "ಹಲೋ", "Kannada", "Tamil")
	if err != nil {
		t.Fatal(err)
	}

	s2, err := NewJSONFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s2.Get(ctx, saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != "ಹಲೋ" {
		t.Errorf("expected persisted entry, got %+v", got)
	}
}
