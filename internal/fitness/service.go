package fitness

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/errors"
	"github.com/mkettu/fitweek/internal/fitness/internal/plan"
)

// undoWindow is how long a deleted history entry can be restored before
// the delete is committed to the store.
const undoWindow = 8 * time.Second

// Service handles the business logic for training data. All methods
// resolve the acting user from the context.
type Service struct {
	store   *docstore.Store
	repo    *repository
	logger  *slog.Logger
	now     func() time.Time
	pending *pendingDeletes
	cardio  *cardioTracker
}

// NewService creates a fitness service backed by the given store.
func NewService(store *docstore.Store, logger *slog.Logger) *Service {
	s := &Service{
		store:  store,
		repo:   newRepository(store, logger),
		logger: logger,
		// Timestamps are stored as RFC 3339 strings and ordered
		// lexicographically, which only works when they share an offset.
		now:    func() time.Time { return time.Now().UTC() },
		cardio: newCardioTracker(),
	}
	s.pending = newPendingDeletes(undoWindow, s.commitDelete)
	return s
}

// Profile returns the user's profile. A user who has never saved a
// profile gets the zero profile rather than an error.
func (s *Service) Profile(ctx context.Context) (Profile, error) {
	p, err := s.repo.profile.Get(ctx)
	if errors.Is(err, docstore.ErrNotFound) {
		return Profile{}, nil
	}
	if err != nil {
		return Profile{}, errors.Wrap(err, "load profile")
	}
	return p, nil
}

// SaveProfile validates and stores the user's profile. The goal is
// normalized to its canonical spelling; an unrecognized non-empty goal
// is rejected with ErrUnknownGoal.
func (s *Service) SaveProfile(ctx context.Context, p Profile) error {
	if p.Goal != "" {
		goal, ok := plan.NormalizeGoal(p.Goal)
		if !ok {
			return errors.Wrap(ErrUnknownGoal, "save profile", slog.String("goal", p.Goal))
		}
		p.Goal = string(goal)
	}
	p.UpdatedAt = s.now()
	if err := s.repo.profile.Set(ctx, p); err != nil {
		return errors.Wrap(err, "save profile")
	}
	return nil
}
