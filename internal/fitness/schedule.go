package fitness

import (
	"context"
	"log/slog"

	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/errors"
	"github.com/mkettu/fitweek/internal/fitness/internal/plan"
)

// PlannedSession is one slot of a generated week, before routines are
// created from it.
type PlannedSession struct {
	Day       string         `json:"day"`
	Weekday   string         `json:"weekday"`
	Name      string         `json:"name"`
	Rest      bool           `json:"rest"`
	Exercises []Prescription `json:"exercises"`
}

// PlanPreview is what generation would produce for the user's current
// goal. HasGenerated tells the client to ask whether to replace the
// previous generated set or keep both.
type PlanPreview struct {
	Goal         string           `json:"goal"`
	Sessions     []PlannedSession `json:"sessions"`
	HasGenerated bool             `json:"hasGenerated"`
}

// plannedWeek builds the seven planned sessions for a goal, or nil when
// the goal is unset or unknown.
func plannedWeek(goal string) []PlannedSession {
	normalized, ok := plan.NormalizeGoal(goal)
	if !ok {
		return nil
	}
	sessions := plan.Generate(normalized)
	if len(sessions) == 0 {
		return nil
	}
	planned := make([]PlannedSession, len(sessions))
	for i, sess := range sessions {
		exercises := make([]Prescription, len(sess.Prescriptions))
		for j, p := range sess.Prescriptions {
			exercises[j] = Prescription{ExerciseID: p.ExerciseID, Sets: p.Sets, Reps: p.Reps}
		}
		planned[i] = PlannedSession{
			Day:       dayKeys[i],
			Weekday:   weekdayNames[dayKeys[i]],
			Name:      sess.Name,
			Rest:      sess.Rest,
			Exercises: exercises,
		}
	}
	return planned
}

// groupsFor derives the distinct muscle groups a set of prescriptions
// touches, in first-occurrence order.
func groupsFor(exercises []Prescription) []string {
	var groups []string
	seen := map[string]bool{}
	for _, p := range exercises {
		exercise, ok := ExerciseByID(p.ExerciseID)
		if !ok || seen[exercise.Group] {
			continue
		}
		seen[exercise.Group] = true
		groups = append(groups, exercise.Group)
	}
	return groups
}

// PreviewPlan generates the week for the user's goal without writing
// anything. ErrNoGoal is returned when the profile has no usable goal.
func (s *Service) PreviewPlan(ctx context.Context) (PlanPreview, error) {
	profile, err := s.Profile(ctx)
	if err != nil {
		return PlanPreview{}, err
	}
	planned := plannedWeek(profile.Goal)
	if planned == nil {
		return PlanPreview{}, errors.Wrap(ErrNoGoal, "preview plan", slog.String("goal", profile.Goal))
	}
	generated, err := s.repo.routines.ListGenerated(ctx)
	if err != nil {
		return PlanPreview{}, errors.Wrap(err, "list generated routines")
	}
	return PlanPreview{
		Goal:         profile.Goal,
		Sessions:     planned,
		HasGenerated: len(generated) > 0,
	}, nil
}

// ApplyPlan generates the week for the user's goal and commits it in a
// single batch: seven new generated routines plus seven schedule-day
// assignments pointing at them. With replacing set, previously
// generated routines are deleted in the same batch; otherwise they
// remain but lose their schedule slots. ErrNoGoal means nothing was
// written.
func (s *Service) ApplyPlan(ctx context.Context, replacing bool) error {
	uid, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	profile, err := s.Profile(ctx)
	if err != nil {
		return err
	}
	planned := plannedWeek(profile.Goal)
	if planned == nil {
		return errors.Wrap(ErrNoGoal, "apply plan", slog.String("goal", profile.Goal))
	}

	batch := s.store.Batch()
	if replacing {
		generated, err := s.repo.routines.ListGenerated(ctx)
		if err != nil {
			return errors.Wrap(err, "list generated routines")
		}
		for _, routine := range generated {
			batch.Delete(routinePath(uid, routine.ID))
		}
	}

	now := s.now()
	for _, sess := range planned {
		id := docstore.NewID()
		batch.Set(routinePath(uid, id), Routine{
			Name:      sess.Name,
			Groups:    groupsFor(sess.Exercises),
			Exercises: sess.Exercises,
			Generated: true,
			CreatedAt: now,
		})
		batch.Set(schedulePath(uid, sess.Day), ScheduleDay{
			Day:         sess.Day,
			RoutineID:   id,
			RoutineName: sess.Name,
			AssignedAt:  now,
		})
	}

	if err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit generated plan")
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "applied generated plan",
		slog.String("goal", profile.Goal), slog.Bool("replacing", replacing))
	return nil
}

// AssignDay points a schedule slot at an existing routine.
func (s *Service) AssignDay(ctx context.Context, day, routineID string) error {
	if !validDayKey(day) {
		return errors.Wrap(ErrInvalidDay, "assign day", slog.String("day", day))
	}
	routine, err := s.repo.routines.Get(ctx, routineID)
	if err != nil {
		return errors.Wrap(err, "load routine for assignment")
	}
	return s.repo.schedule.Assign(ctx, ScheduleDay{
		Day:         day,
		RoutineID:   routine.ID,
		RoutineName: routine.Name,
		AssignedAt:  s.now(),
	})
}

// WeekSchedule resolves the seven-slot week view. Slots whose routine
// has been deleted are flagged Broken instead of failing the whole
// view.
func (s *Service) WeekSchedule(ctx context.Context) ([]DayAssignment, error) {
	week, err := s.repo.schedule.Week(ctx)
	if err != nil {
		return nil, err
	}
	routines, err := s.repo.routines.List(ctx)
	if err != nil {
		return nil, err
	}
	exists := make(map[string]bool, len(routines))
	for _, routine := range routines {
		exists[routine.ID] = true
	}

	assignments := make([]DayAssignment, 0, len(dayKeys))
	for _, key := range dayKeys {
		assignment := DayAssignment{Day: key, Weekday: weekdayNames[key]}
		if day, ok := week[key]; ok && day.RoutineID != "" {
			assignment.RoutineID = day.RoutineID
			assignment.RoutineName = day.RoutineName
			assignment.AssignedAt = day.AssignedAt
			assignment.Broken = !exists[day.RoutineID]
		}
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}
