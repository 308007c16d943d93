package fitness

import (
	"context"
	"log/slog"

	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/errors"
)

type profileRepository struct {
	store  *docstore.Store
	logger *slog.Logger
}

// Get loads the user's profile. Returns docstore.ErrNotFound when the
// profile has never been saved.
func (r *profileRepository) Get(ctx context.Context) (Profile, error) {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return Profile{}, err
	}
	doc, err := r.store.Get(ctx, profilePath(uid))
	if err != nil {
		return Profile{}, errors.Wrap(err, "get profile")
	}
	var p Profile
	if err := doc.Decode(&p); err != nil {
		return Profile{}, errors.Wrap(err, "decode profile")
	}
	return p, nil
}

// Set overwrites the user's profile document.
func (r *profileRepository) Set(ctx context.Context, p Profile) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, profilePath(uid), p); err != nil {
		return errors.Wrap(err, "set profile")
	}
	return nil
}
