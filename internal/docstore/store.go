package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/google/uuid"
)

// fieldNamePattern restricts order-by fields to plain identifiers so they can
// be embedded in a json_extract path.
var fieldNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Get returns the document at path or ErrNotFound.
func (s *Store) Get(ctx context.Context, path string) (Document, error) {
	var fields []byte
	err := s.readOnly.QueryRowContext(ctx,
		`SELECT fields FROM documents WHERE path = ?`, path).Scan(&fields)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, fmt.Errorf("get %s: %w", path, ErrNotFound)
	}
	if err != nil {
		return Document{}, fmt.Errorf("query document %s: %w", path, err)
	}
	return Document{Path: path, Fields: fields}, nil
}

// Set writes the document at path, fully replacing any previous fields.
func (s *Store) Set(ctx context.Context, path string, fields any) error {
	encoded, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode fields for %s: %w", path, err)
	}
	if _, err = s.ReadWrite.ExecContext(ctx, `
		INSERT INTO documents (path, collection, fields) VALUES (?, ?, ?)
		ON CONFLICT (path) DO UPDATE SET fields = excluded.fields`,
		path, collectionOf(path), string(encoded)); err != nil {
		return fmt.Errorf("set document %s: %w", path, err)
	}
	return nil
}

// Update merges the partial fields into the document at path.
//
// Missing documents yield ErrNotFound; merge semantics follow SQLite's
// json_patch, so nested objects merge and explicit nulls delete keys.
func (s *Store) Update(ctx context.Context, path string, partial map[string]any) error {
	encoded, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("encode partial fields for %s: %w", path, err)
	}
	result, err := s.ReadWrite.ExecContext(ctx,
		`UPDATE documents SET fields = json_patch(fields, ?) WHERE path = ?`,
		string(encoded), path)
	if err != nil {
		return fmt.Errorf("update document %s: %w", path, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %s: %w", path, err)
	}
	if rows == 0 {
		return fmt.Errorf("update %s: %w", path, ErrNotFound)
	}
	return nil
}

// Add creates a document with a generated identifier in the given collection
// and returns the identifier.
func (s *Store) Add(ctx context.Context, collectionPath string, fields any) (string, error) {
	id := NewID()
	if err := s.Set(ctx, collectionPath+"/"+id, fields); err != nil {
		return "", fmt.Errorf("add to %s: %w", collectionPath, err)
	}
	return id, nil
}

// NewID mints a document identifier. Identifiers are generated client-side so
// that a batch can create documents and reference them in the same commit.
func NewID() string {
	return uuid.NewString()
}

// Delete removes the document at path. Deleting a missing document is not an
// error.
func (s *Store) Delete(ctx context.Context, path string) error {
	if _, err := s.ReadWrite.ExecContext(ctx,
		`DELETE FROM documents WHERE path = ?`, path); err != nil {
		return fmt.Errorf("delete document %s: %w", path, err)
	}
	return nil
}

// QueryOption adjusts a Query.
type QueryOption func(*queryConfig)

type queryConfig struct {
	orderBy    string
	descending bool
}

// OrderBy sorts the result by the given top-level field.
func OrderBy(field string) QueryOption {
	return func(c *queryConfig) {
		c.orderBy = field
	}
}

// Descending reverses the OrderBy direction.
func Descending() QueryOption {
	return func(c *queryConfig) {
		c.descending = true
	}
}

// Query returns all documents in the collection.
//
// Without OrderBy the result order is unspecified.
func (s *Store) Query(ctx context.Context, collectionPath string, opts ...QueryOption) ([]Document, error) {
	var cfg queryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	query := `SELECT path, fields FROM documents WHERE collection = ?`
	if cfg.orderBy != "" {
		if !fieldNamePattern.MatchString(cfg.orderBy) {
			return nil, fmt.Errorf("invalid order-by field: %q", cfg.orderBy)
		}
		query += ` ORDER BY json_extract(fields, '$.` + cfg.orderBy + `')`
		if cfg.descending {
			query += ` DESC`
		}
	}

	rows, err := s.readOnly.QueryContext(ctx, query, collectionPath)
	if err != nil {
		return nil, fmt.Errorf("query collection %s: %w", collectionPath, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "could not close rows", slog.Any("error", closeErr))
		}
	}()

	var docs []Document
	for rows.Next() {
		var doc Document
		var fields []byte
		if err = rows.Scan(&doc.Path, &fields); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc.Fields = fields
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return docs, nil
}
