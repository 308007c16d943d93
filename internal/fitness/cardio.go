package fitness

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mkettu/fitweek/internal/errors"
	"github.com/mkettu/fitweek/internal/timer"
)

// cardioTracker holds the in-flight cardio timer per user. Sessions
// live in memory only; an unrecorded session is lost on restart.
type cardioTracker struct {
	mu       sync.Mutex
	sessions map[string]*timer.Timer
}

func newCardioTracker() *cardioTracker {
	return &cardioTracker{sessions: make(map[string]*timer.Timer)}
}

// CardioStatus reports whether a cardio session is running for the user
// and its elapsed seconds.
func (s *Service) CardioStatus(ctx context.Context) (bool, int, error) {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return false, 0, err
	}
	s.cardio.mu.Lock()
	defer s.cardio.mu.Unlock()
	t, ok := s.cardio.sessions[uid]
	if !ok {
		return false, 0, nil
	}
	return true, t.Seconds(), nil
}

// StartCardio begins timing a cardio session for the user.
func (s *Service) StartCardio(ctx context.Context) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	s.cardio.mu.Lock()
	defer s.cardio.mu.Unlock()
	if _, ok := s.cardio.sessions[uid]; ok {
		return errors.Wrap(ErrCardioAlreadyRunning, "start cardio")
	}
	t := timer.NewWithClock(s.now)
	t.Start()
	s.cardio.sessions[uid] = t
	return nil
}

// StopCardio ends the running cardio session and records it in the
// history with the given distance in miles and calorie estimate. Speed
// is derived from distance and elapsed time.
func (s *Service) StopCardio(ctx context.Context, distance, calories float64) (HistoryEntry, error) {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return HistoryEntry{}, err
	}
	s.cardio.mu.Lock()
	t, ok := s.cardio.sessions[uid]
	if ok {
		delete(s.cardio.sessions, uid)
	}
	s.cardio.mu.Unlock()
	if !ok {
		return HistoryEntry{}, errors.Wrap(ErrCardioNotRunning, "stop cardio")
	}
	t.Pause()

	seconds := t.Seconds()
	var speed float64
	if seconds > 0 && distance > 0 {
		speed = distance / (float64(seconds) / 3600)
	}
	entry := HistoryEntry{
		Type:     EntryCardio,
		Exercise: "Cardio Session",
		Duration: seconds,
		Distance: distance,
		Speed:    speed,
		Calories: calories,
		Date:     s.now(),
	}
	id, err := s.repo.history.Add(ctx, entry)
	if err != nil {
		return HistoryEntry{}, errors.Wrap(err, "record cardio session", slog.Int("duration", seconds))
	}
	entry.ID = id
	return entry, nil
}

// CancelCardio discards a running cardio session without recording it.
func (s *Service) CancelCardio(ctx context.Context) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	s.cardio.mu.Lock()
	defer s.cardio.mu.Unlock()
	if _, ok := s.cardio.sessions[uid]; !ok {
		return errors.Wrap(ErrCardioNotRunning, "cancel cardio")
	}
	delete(s.cardio.sessions, uid)
	return nil
}
