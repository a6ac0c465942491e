// Package phrasebook persists saved phrases. The detection/OCR/translit
// core never touches this store; only the HTTP layer does.
package phrasebook

import (
	"context"
	"time"
)

// Entry is one saved phrase.
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Src       string    `json:"src"`
	Tgt       string    `json:"tgt"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the phrasebook persistence capability. List returns entries
// newest-first.
type Store interface {
	Save(ctx context.Context, title, text, src, tgt string) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, id string) (Entry, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
