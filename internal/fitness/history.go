package fitness

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/errors"
)

// pendingDeletes tracks history entries the user has deleted but can
// still undo. The store delete is deferred until the undo window
// passes; until then the entry is hidden from listings.
type pendingDeletes struct {
	mu     sync.Mutex
	window time.Duration
	staged map[string]*time.Timer // keyed by document path
	commit func(path string)
}

func newPendingDeletes(window time.Duration, commit func(path string)) *pendingDeletes {
	return &pendingDeletes{
		window: window,
		staged: make(map[string]*time.Timer),
		commit: commit,
	}
}

// stage schedules a delete. Staging an already staged path restarts its
// window.
func (p *pendingDeletes) stage(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if timer, ok := p.staged[path]; ok {
		timer.Stop()
	}
	p.staged[path] = time.AfterFunc(p.window, func() {
		p.mu.Lock()
		_, ok := p.staged[path]
		delete(p.staged, path)
		p.mu.Unlock()
		if ok {
			p.commit(path)
		}
	})
}

// cancel aborts a staged delete. Returns false when the path was not
// staged, which means the window already expired or nothing was
// deleted.
func (p *pendingDeletes) cancel(path string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	timer, ok := p.staged[path]
	if !ok {
		return false
	}
	timer.Stop()
	delete(p.staged, path)
	return true
}

// isStaged reports whether a path has a pending delete.
func (p *pendingDeletes) isStaged(path string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.staged[path]
	return ok
}

// drop discards a staged delete without committing it, for paths that
// have already been removed by other means.
func (p *pendingDeletes) drop(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if timer, ok := p.staged[path]; ok {
		timer.Stop()
		delete(p.staged, path)
	}
}

// commitDelete performs the deferred store delete once an undo window
// expires. It runs outside any request, so it uses a background
// context.
func (s *Service) commitDelete(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.Delete(ctx, path); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "commit deferred history delete",
			slog.String("path", path), slog.Any("error", err))
	}
}

// LogManualSet appends a manually logged set to the history and returns
// the stored entry.
func (s *Service) LogManualSet(ctx context.Context, exerciseID string, weight float64, sets, reps int, date time.Time) (HistoryEntry, error) {
	exercise, ok := ExerciseByID(exerciseID)
	if !ok {
		return HistoryEntry{}, errors.Wrap(ErrUnknownExercise, "log manual set", slog.String("exerciseID", exerciseID))
	}
	if sets <= 0 || reps <= 0 {
		return HistoryEntry{}, errors.Wrap(ErrInvalidRoutine, "sets and reps must be positive")
	}
	if date.IsZero() {
		date = s.now()
	}
	// Stored dates sort lexicographically, so mixed offsets would break
	// the newest-first ordering.
	date = date.UTC()
	entry := HistoryEntry{
		Type:       EntryManual,
		Exercise:   exercise.Name,
		ExerciseID: exercise.ID,
		Weight:     weight,
		Sets:       sets,
		Reps:       reps,
		Date:       date,
	}
	id, err := s.repo.history.Add(ctx, entry)
	if err != nil {
		return HistoryEntry{}, err
	}
	entry.ID = id
	return entry, nil
}

// PerformedExercise is one exercise as actually performed during a
// routine session.
type PerformedExercise struct {
	ExerciseID string  `json:"id"`
	Weight     float64 `json:"weight"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
}

// CompleteRoutineSession records a finished routine: one parent entry
// for the session plus one child entry per performed exercise, written
// atomically. When performed is empty the routine's own prescriptions
// are recorded with no weight.
func (s *Service) CompleteRoutineSession(ctx context.Context, routineID string, performed []PerformedExercise) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	routine, err := s.repo.routines.Get(ctx, routineID)
	if err != nil {
		return errors.Wrap(err, "load routine for completion")
	}
	if len(performed) == 0 {
		for _, p := range routine.Exercises {
			performed = append(performed, PerformedExercise{ExerciseID: p.ExerciseID, Sets: p.Sets, Reps: p.Reps})
		}
	}

	now := s.now()
	parentID := docstore.NewID()
	batch := s.store.Batch()
	batch.Set(historyPath(uid, parentID), HistoryEntry{
		Type:        EntryRoutine,
		RoutineID:   routine.ID,
		RoutineName: routine.Name,
		Date:        now,
	})
	for _, p := range performed {
		exercise, ok := ExerciseByID(p.ExerciseID)
		if !ok {
			return errors.Wrap(ErrUnknownExercise, "complete routine session", slog.String("exerciseID", p.ExerciseID))
		}
		batch.Set(historyPath(uid, docstore.NewID()), HistoryEntry{
			Type:        EntryRoutineChild,
			Exercise:    exercise.Name,
			ExerciseID:  exercise.ID,
			Weight:      p.Weight,
			Sets:        p.Sets,
			Reps:        p.Reps,
			RoutineID:   routine.ID,
			RoutineName: routine.Name,
			ParentID:    parentID,
			Date:        now,
		})
	}
	if err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit routine session", slog.String("routineID", routineID))
	}
	return nil
}

// History lists the user's workout log, newest first, hiding entries
// with a pending delete.
func (s *Service) History(ctx context.Context) ([]HistoryEntry, error) {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.history.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := entries[:0]
	for _, entry := range entries {
		if !s.pending.isStaged(historyPath(uid, entry.ID)) {
			visible = append(visible, entry)
		}
	}
	return visible, nil
}

// DeleteHistoryEntry stages a history entry for deletion. The entry
// disappears from listings immediately but the store delete happens
// only after the undo window passes.
func (s *Service) DeleteHistoryEntry(ctx context.Context, id string) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if _, err := s.repo.history.Get(ctx, id); err != nil {
		return errors.Wrap(err, "stage history delete", slog.String("id", id))
	}
	s.pending.stage(historyPath(uid, id))
	return nil
}

// UndoDeleteHistoryEntry restores an entry whose delete is still
// pending. After the undo window has passed this returns ErrUndoExpired.
func (s *Service) UndoDeleteHistoryEntry(ctx context.Context, id string) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if !s.pending.cancel(historyPath(uid, id)) {
		return errors.Wrap(ErrUndoExpired, "undo history delete", slog.String("id", id))
	}
	return nil
}

// ClearHistory deletes every history entry for the user in one batch,
// including entries with a pending delete.
func (s *Service) ClearHistory(ctx context.Context) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	entries, err := s.repo.history.List(ctx)
	if err != nil {
		return err
	}
	batch := s.store.Batch()
	for _, entry := range entries {
		path := historyPath(uid, entry.ID)
		s.pending.drop(path)
		batch.Delete(path)
	}
	if err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "clear history")
	}
	return nil
}
