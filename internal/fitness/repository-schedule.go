package fitness

import (
	"context"
	"log/slog"

	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/errors"
)

type scheduleRepository struct {
	store  *docstore.Store
	logger *slog.Logger
}

// Week returns the stored schedule assignments keyed by day.
func (r *scheduleRepository) Week(ctx context.Context) (map[string]ScheduleDay, error) {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := r.store.Query(ctx, scheduleCollection(uid))
	if err != nil {
		return nil, errors.Wrap(err, "query schedule")
	}
	week := make(map[string]ScheduleDay, len(docs))
	for _, doc := range docs {
		var day ScheduleDay
		if err := doc.Decode(&day); err != nil {
			return nil, errors.Wrap(err, "decode schedule day", slog.String("path", doc.Path))
		}
		week[doc.ID()] = day
	}
	return week, nil
}

// Assign writes a single day's assignment.
func (r *scheduleRepository) Assign(ctx context.Context, day ScheduleDay) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if !validDayKey(day.Day) {
		return errors.Wrap(ErrInvalidDay, "assign schedule day", slog.String("day", day.Day))
	}
	if err := r.store.Set(ctx, schedulePath(uid, day.Day), day); err != nil {
		return errors.Wrap(err, "set schedule day", slog.String("day", day.Day))
	}
	return nil
}
