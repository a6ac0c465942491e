/**
 * PostgreSQL phrasebook store
 *
 * Used when DATABASE_URL is set; otherwise the JSON-file store serves
 * single-node deployments. Schema:
 *
 *   CREATE TABLE IF NOT EXISTS phrases (
 *       id         UUID PRIMARY KEY,
 *       title      TEXT NOT NULL,
 *       text       TEXT NOT NULL,
 *       src        TEXT NOT NULL,
 *       tgt        TEXT NOT NULL,
 *       created_at TIMESTAMPTZ NOT NULL
 *   );
 */

package phrasebook

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	svcerr "github.com/indictext/lipi/internal/errors"
)

// PostgresStore persists phrases in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database and verifies connectivity.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Save inserts a new phrase.
func (p *PostgresStore) Save(ctx context.Context, title, text, src, tgt string) (Entry, error) {
	entry := Entry{
		ID:        uuid.NewString(),
		Title:     title,
		Text:      text,
		Src:       src,
		Tgt:       tgt,
		CreatedAt: time.Now().UTC(),
	}

	const query = `
		INSERT INTO phrases (id, title, text, src, tgt, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6)
	`
	if _, err := p.db.ExecContext(ctx, query,
		entry.ID, entry.Title, entry.Text, entry.Src, entry.Tgt, entry.CreatedAt,
	); err != nil {
		return Entry{}, svcerr.NewStoreFailed("save", err)
	}
	return entry, nil
}

// List returns all phrases, newest first.
func (p *PostgresStore) List(ctx context.Context) ([]Entry, error) {
	const query = `
		SELECT id, title, text, src, tgt, created_at
		FROM phrases
		ORDER BY created_at DESC
	`
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, svcerr.NewStoreFailed("list", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Title, &e.Text, &e.Src, &e.Tgt, &e.CreatedAt); err != nil {
			return nil, svcerr.NewStoreFailed("list", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, svcerr.NewStoreFailed("list", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Get returns the phrase with the given id.
func (p *PostgresStore) Get(ctx context.Context, id string) (Entry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Entry{}, svcerr.NewNotFound("phrase", id)
	}

	const query = `
		SELECT id, title, text, src, tgt, created_at
		FROM phrases
		WHERE id = $1::uuid
	`
	var e Entry
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Text, &e.Src, &e.Tgt, &e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, svcerr.NewNotFound("phrase", id)
	}
	if err != nil {
		return Entry{}, svcerr.NewStoreFailed("get", err)
	}
	return e, nil
}

// Delete removes the phrase with the given id.
func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return svcerr.NewNotFound("phrase", id)
	}

	res, err := p.db.ExecContext(ctx, `DELETE FROM phrases WHERE id = $1::uuid`, id)
	if err != nil {
		return svcerr.NewStoreFailed("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return svcerr.NewStoreFailed("delete", err)
	}
	if n == 0 {
		return svcerr.NewNotFound("phrase", id)
	}
	return nil
}

// Ping checks database connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the database connection.
func (p *PostgresStore) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}
