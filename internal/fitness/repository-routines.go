package fitness

import (
	"context"
	"log/slog"

	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/errors"
)

type routineRepository struct {
	store  *docstore.Store
	logger *slog.Logger
}

// List returns the user's routines, newest first.
func (r *routineRepository) List(ctx context.Context) ([]Routine, error) {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := r.store.Query(ctx, routinesPath(uid), docstore.OrderBy("createdAt"), docstore.Descending())
	if err != nil {
		return nil, errors.Wrap(err, "query routines")
	}
	routines := make([]Routine, 0, len(docs))
	for _, doc := range docs {
		var routine Routine
		if err := doc.Decode(&routine); err != nil {
			return nil, errors.Wrap(err, "decode routine", slog.String("path", doc.Path))
		}
		routine.ID = doc.ID()
		routines = append(routines, routine)
	}
	return routines, nil
}

// ListGenerated returns only the routines created by the plan generator.
func (r *routineRepository) ListGenerated(ctx context.Context) ([]Routine, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var generated []Routine
	for _, routine := range all {
		if routine.Generated {
			generated = append(generated, routine)
		}
	}
	return generated, nil
}

// Get loads a single routine by ID.
func (r *routineRepository) Get(ctx context.Context, id string) (Routine, error) {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return Routine{}, err
	}
	doc, err := r.store.Get(ctx, routinePath(uid, id))
	if err != nil {
		return Routine{}, errors.Wrap(err, "get routine", slog.String("id", id))
	}
	var routine Routine
	if err := doc.Decode(&routine); err != nil {
		return Routine{}, errors.Wrap(err, "decode routine", slog.String("id", id))
	}
	routine.ID = doc.ID()
	return routine, nil
}

// Create stores a new routine and returns its generated ID.
func (r *routineRepository) Create(ctx context.Context, routine Routine) (string, error) {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	id, err := r.store.Add(ctx, routinesPath(uid), routine)
	if err != nil {
		return "", errors.Wrap(err, "create routine")
	}
	return id, nil
}

// Update overwrites an existing routine.
func (r *routineRepository) Update(ctx context.Context, id string, routine Routine) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if _, err := r.store.Get(ctx, routinePath(uid, id)); err != nil {
		return errors.Wrap(err, "look up routine", slog.String("id", id))
	}
	if err := r.store.Set(ctx, routinePath(uid, id), routine); err != nil {
		return errors.Wrap(err, "update routine", slog.String("id", id))
	}
	return nil
}
