package fitness

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mkettu/fitweek/internal/errors"
)

// ErrInvalidRoutine is returned for routine writes that fail validation.
var ErrInvalidRoutine = errors.NewSentinel("invalid routine")

// validateRoutine checks a routine's name and exercise references.
func validateRoutine(name string, exercises []Prescription) error {
	if strings.TrimSpace(name) == "" {
		return errors.Wrap(ErrInvalidRoutine, "routine name is empty")
	}
	for _, p := range exercises {
		if _, ok := ExerciseByID(p.ExerciseID); !ok {
			return errors.Wrap(ErrUnknownExercise, "validate routine", slog.String("exerciseID", p.ExerciseID))
		}
		if p.Sets <= 0 || p.Reps <= 0 {
			return errors.Wrap(ErrInvalidRoutine, "sets and reps must be positive",
				slog.String("exerciseID", p.ExerciseID), slog.Int("sets", p.Sets), slog.Int("reps", p.Reps))
		}
	}
	return nil
}

// Routines lists the user's routines, newest first.
func (s *Service) Routines(ctx context.Context) ([]Routine, error) {
	return s.repo.routines.List(ctx)
}

// Routine loads one routine by ID.
func (s *Service) Routine(ctx context.Context, id string) (Routine, error) {
	return s.repo.routines.Get(ctx, id)
}

// CreateRoutine stores a user-built routine and returns it with its
// assigned ID.
func (s *Service) CreateRoutine(ctx context.Context, name string, exercises []Prescription) (Routine, error) {
	if err := validateRoutine(name, exercises); err != nil {
		return Routine{}, err
	}
	routine := Routine{
		Name:      strings.TrimSpace(name),
		Groups:    groupsFor(exercises),
		Exercises: exercises,
		Generated: false,
		CreatedAt: s.now(),
	}
	id, err := s.repo.routines.Create(ctx, routine)
	if err != nil {
		return Routine{}, err
	}
	routine.ID = id
	return routine, nil
}

// UpdateRoutine replaces a routine's name and exercises. Creation time
// and the generated flag are preserved.
func (s *Service) UpdateRoutine(ctx context.Context, id, name string, exercises []Prescription) (Routine, error) {
	if err := validateRoutine(name, exercises); err != nil {
		return Routine{}, err
	}
	existing, err := s.repo.routines.Get(ctx, id)
	if err != nil {
		return Routine{}, err
	}
	existing.Name = strings.TrimSpace(name)
	existing.Exercises = exercises
	existing.Groups = groupsFor(exercises)
	if err := s.repo.routines.Update(ctx, id, existing); err != nil {
		return Routine{}, err
	}
	return existing, nil
}

// DeleteRoutine removes a routine and, in the same batch, clears any
// schedule slots pointing at it so the week view never dangles.
func (s *Service) DeleteRoutine(ctx context.Context, id string) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	week, err := s.repo.schedule.Week(ctx)
	if err != nil {
		return errors.Wrap(err, "load schedule for cascade")
	}

	batch := s.store.Batch()
	batch.Delete(routinePath(uid, id))
	for day, assignment := range week {
		if assignment.RoutineID == id {
			batch.Delete(schedulePath(uid, day))
		}
	}
	if err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "delete routine", slog.String("id", id))
	}
	return nil
}
