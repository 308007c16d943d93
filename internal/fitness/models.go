// Package fitness implements the training domain: user profiles,
// weekly plan generation, routine management, workout history and the
// analytics derived from it. All data lives in the document store under
// each user's subtree.
package fitness

import (
	"time"

	"github.com/mkettu/fitweek/internal/errors"
)

var (
	// ErrNotAuthenticated is returned when a context carries no user.
	ErrNotAuthenticated = errors.NewSentinel("not authenticated")
	// ErrNoGoal is returned when plan generation runs for a profile
	// without a fitness goal. Callers treat it as "nothing to do".
	ErrNoGoal = errors.NewSentinel("no fitness goal set")
	// ErrUnknownGoal is returned when a profile write carries a goal
	// outside the known enumeration.
	ErrUnknownGoal = errors.NewSentinel("unknown fitness goal")
	// ErrInvalidDay is returned for day keys outside day1..day7.
	ErrInvalidDay = errors.NewSentinel("invalid schedule day")
	// ErrCardioNotRunning is returned when stopping a cardio session
	// that was never started.
	ErrCardioNotRunning = errors.NewSentinel("no cardio session running")
	// ErrCardioAlreadyRunning is returned when starting a cardio
	// session while one is in progress.
	ErrCardioAlreadyRunning = errors.NewSentinel("cardio session already running")
	// ErrUnknownExercise is returned for exercise IDs outside the
	// catalog.
	ErrUnknownExercise = errors.NewSentinel("unknown exercise")
	// ErrUndoExpired is returned when undoing a history delete after
	// the undo window has passed.
	ErrUndoExpired = errors.NewSentinel("nothing to undo")
)

// Profile holds the user's physical stats and training goal.
type Profile struct {
	Weight     float64   `json:"weight"`
	Height     float64   `json:"height"`
	Age        int       `json:"age"`
	Goal       string    `json:"goal"`
	Experience string    `json:"experience"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Prescription is one exercise line in a routine: sets of reps for a
// catalog exercise.
type Prescription struct {
	ExerciseID string `json:"id"`
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
}

// Routine is a named collection of prescriptions. Generated routines
// come from the plan generator; the rest are user-built.
type Routine struct {
	ID        string         `json:"-"`
	Name      string         `json:"name"`
	Groups    []string       `json:"groups"`
	Exercises []Prescription `json:"exercises"`
	Generated bool           `json:"generated"`
	CreatedAt time.Time      `json:"createdAt"`
}

// dayKeys are the schedule slot identifiers, Monday first.
var dayKeys = [7]string{"day1", "day2", "day3", "day4", "day5", "day6", "day7"}

// weekdayNames maps a day key to its display weekday.
var weekdayNames = map[string]string{
	"day1": "Monday",
	"day2": "Tuesday",
	"day3": "Wednesday",
	"day4": "Thursday",
	"day5": "Friday",
	"day6": "Saturday",
	"day7": "Sunday",
}

// validDayKey reports whether key is one of day1..day7.
func validDayKey(key string) bool {
	_, ok := weekdayNames[key]
	return ok
}

// ScheduleDay is the stored assignment of a routine to a weekday slot.
// RoutineName is denormalized so the week view renders without loading
// every routine.
type ScheduleDay struct {
	Day         string    `json:"day"`
	RoutineID   string    `json:"routineId"`
	RoutineName string    `json:"routineName"`
	AssignedAt  time.Time `json:"assignedAt"`
}

// DayAssignment is one resolved slot in the week view. Broken means the
// slot references a routine that no longer exists.
type DayAssignment struct {
	Day         string    `json:"day"`
	Weekday     string    `json:"weekday"`
	RoutineID   string    `json:"routineId,omitempty"`
	RoutineName string    `json:"routineName,omitempty"`
	AssignedAt  time.Time `json:"assignedAt,omitzero"`
	Broken      bool      `json:"broken,omitempty"`
}

// EntryType classifies history entries.
type EntryType string

const (
	// EntryManual is a single logged set.
	EntryManual EntryType = "manual"
	// EntryRoutine is a completed routine session.
	EntryRoutine EntryType = "routine"
	// EntryRoutineChild is one exercise performed within a routine
	// session, linked to its parent via ParentID.
	EntryRoutineChild EntryType = "routine_child"
	// EntryCardio is a timed cardio session.
	EntryCardio EntryType = "cardio"
)

// HistoryEntry is one record in the workout log. Which fields are
// populated depends on Type: manual and routine_child entries carry
// exercise fields, routine entries carry the routine name, cardio
// entries carry duration and distance.
type HistoryEntry struct {
	ID          string    `json:"-"`
	Type        EntryType `json:"type"`
	Exercise    string    `json:"exercise,omitempty"`
	ExerciseID  string    `json:"exerciseId,omitempty"`
	Weight      float64   `json:"weight,omitempty"`
	Sets        int       `json:"sets,omitempty"`
	Reps        int       `json:"reps,omitempty"`
	RoutineID   string    `json:"routineId,omitempty"`
	RoutineName string    `json:"routineName,omitempty"`
	ParentID    string    `json:"parentId,omitempty"`
	Duration    int       `json:"duration,omitempty"` // seconds
	Distance    float64   `json:"distance,omitempty"` // miles
	Speed       float64   `json:"speed,omitempty"`    // miles per hour
	Calories    float64   `json:"calories,omitempty"`
	Date        time.Time `json:"date"`
}
