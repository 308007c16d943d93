package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

type batchOp struct {
	path   string
	fields []byte // nil means delete
}

// Batch collects writes and deletes that commit atomically in one
// transaction. A Batch is not safe for concurrent use.
type Batch struct {
	store *Store
	ops   []batchOp
	errs  []error
}

// Batch starts an empty batch.
func (s *Store) Batch() *Batch {
	return &Batch{store: s}
}

// Set queues a full overwrite of the document at path.
func (b *Batch) Set(path string, fields any) {
	encoded, err := json.Marshal(fields)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("encode fields for %s: %w", path, err))
		return
	}
	b.ops = append(b.ops, batchOp{path: path, fields: encoded})
}

// Delete queues removal of the document at path.
func (b *Batch) Delete(path string) {
	b.ops = append(b.ops, batchOp{path: path})
}

// Len reports the number of queued operations.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Commit applies all queued operations in one transaction. Either every
// operation takes effect or none do.
func (b *Batch) Commit(ctx context.Context) error {
	if len(b.errs) > 0 {
		return fmt.Errorf("batch has invalid operations: %w", errors.Join(b.errs...))
	}
	if len(b.ops) == 0 {
		return nil
	}

	tx, err := b.store.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			b.store.logger.LogAttrs(ctx, slog.LevelError, "failed to rollback batch",
				slog.Any("error", rollbackErr))
		}
	}()

	for _, op := range b.ops {
		if op.fields == nil {
			if _, err = tx.ExecContext(ctx,
				`DELETE FROM documents WHERE path = ?`, op.path); err != nil {
				return fmt.Errorf("batch delete %s: %w", op.path, err)
			}
			continue
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO documents (path, collection, fields) VALUES (?, ?, ?)
			ON CONFLICT (path) DO UPDATE SET fields = excluded.fields`,
			op.path, collectionOf(op.path), string(op.fields)); err != nil {
			return fmt.Errorf("batch set %s: %w", op.path, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}
