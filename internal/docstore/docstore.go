// Package docstore implements a per-user document store addressed by
// hierarchical path, backed by SQLite.
//
// Documents live in collections such as users/{uid}/routines and are
// identified by the full path users/{uid}/routines/{id}. Fields are stored
// as a JSON object. Writes to a single document are atomic; grouped writes
// go through [Store.Batch] which commits in one transaction.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a path does not resolve to a document.
var ErrNotFound = errors.New("document not found")

// Document is a stored document with its full path and raw JSON fields.
type Document struct {
	Path   string
	Fields json.RawMessage
}

// ID returns the last path segment.
func (d Document) ID() string {
	idx := strings.LastIndexByte(d.Path, '/')
	if idx < 0 {
		return d.Path
	}
	return d.Path[idx+1:]
}

// Decode unmarshals the document fields into v.
func (d Document) Decode(v any) error {
	if err := json.Unmarshal(d.Fields, v); err != nil {
		return fmt.Errorf("decode document %s: %w", d.Path, err)
	}
	return nil
}

// collectionOf returns the collection a document path belongs to.
func collectionOf(path string) string {
	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return ""
	}
	return path[:idx]
}
