package fitness

import (
	"context"
	"log/slog"

	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/errors"
)

type historyRepository struct {
	store  *docstore.Store
	logger *slog.Logger
}

// Add appends a history entry and returns its generated ID.
func (r *historyRepository) Add(ctx context.Context, entry HistoryEntry) (string, error) {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	id, err := r.store.Add(ctx, historyCollection(uid), entry)
	if err != nil {
		return "", errors.Wrap(err, "add history entry")
	}
	return id, nil
}

// List returns the user's history, newest first.
func (r *historyRepository) List(ctx context.Context) ([]HistoryEntry, error) {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := r.store.Query(ctx, historyCollection(uid), docstore.OrderBy("date"), docstore.Descending())
	if err != nil {
		return nil, errors.Wrap(err, "query history")
	}
	entries := make([]HistoryEntry, 0, len(docs))
	for _, doc := range docs {
		var entry HistoryEntry
		if err := doc.Decode(&entry); err != nil {
			return nil, errors.Wrap(err, "decode history entry", slog.String("path", doc.Path))
		}
		entry.ID = doc.ID()
		entries = append(entries, entry)
	}
	return entries, nil
}

// Get loads a single history entry by ID.
func (r *historyRepository) Get(ctx context.Context, id string) (HistoryEntry, error) {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return HistoryEntry{}, err
	}
	doc, err := r.store.Get(ctx, historyPath(uid, id))
	if err != nil {
		return HistoryEntry{}, errors.Wrap(err, "get history entry", slog.String("id", id))
	}
	var entry HistoryEntry
	if err := doc.Decode(&entry); err != nil {
		return HistoryEntry{}, errors.Wrap(err, "decode history entry", slog.String("id", id))
	}
	entry.ID = doc.ID()
	return entry, nil
}

// Delete removes a history entry. Deleting an absent entry is not an
// error.
func (r *historyRepository) Delete(ctx context.Context, id string) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := r.store.Delete(ctx, historyPath(uid, id)); err != nil {
		return errors.Wrap(err, "delete history entry", slog.String("id", id))
	}
	return nil
}
