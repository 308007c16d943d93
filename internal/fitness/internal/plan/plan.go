// Package plan builds weekly training plans from a fitness goal.
//
// Generation is deterministic: the same goal always yields the same
// seven sessions in the same order. All state lives in package-level
// tables so callers can rely on value semantics.
package plan

import "strings"

// Goal is a normalized fitness goal as stored on the user profile.
type Goal string

const (
	GoalBuildMuscle   Goal = "Build Muscle"
	GoalLoseFat       Goal = "Lose Fat"
	GoalEndurance     Goal = "Increase Endurance"
	GoalGainStrength  Goal = "Gain Strength"
	GoalImproveHealth Goal = "Improve Overall Health"
)

// NormalizeGoal canonicalizes free-form goal input. Legacy clients sent
// "Endurance" for the endurance goal, so that synonym maps to
// GoalEndurance. The second return value reports whether the input
// matched a known goal.
func NormalizeGoal(raw string) (Goal, bool) {
	switch Goal(strings.TrimSpace(raw)) {
	case GoalBuildMuscle:
		return GoalBuildMuscle, true
	case GoalLoseFat:
		return GoalLoseFat, true
	case GoalEndurance, Goal("Endurance"):
		return GoalEndurance, true
	case GoalGainStrength:
		return GoalGainStrength, true
	case GoalImproveHealth:
		return GoalImproveHealth, true
	}
	return "", false
}

// Goals lists every known goal in presentation order.
func Goals() []Goal {
	return []Goal{GoalBuildMuscle, GoalLoseFat, GoalEndurance, GoalGainStrength, GoalImproveHealth}
}

// Prescription is one exercise within a session: which exercise, how
// many sets and how many reps per set. For timed cardio work Reps holds
// seconds and for steady cardio it holds minutes, matching how the
// exercise catalog describes those entries.
type Prescription struct {
	ExerciseID string
	Sets       int
	Reps       int
}

// Session is one slot in the weekly plan. Slot 0 is Monday.
type Session struct {
	Name          string
	Rest          bool
	Prescriptions []Prescription
}

// restPrescription fills rest slots so that every session in a plan has
// at least one prescription to log against.
var restPrescription = Prescription{ExerciseID: "stretch", Sets: 1, Reps: 10}

// weekPlans maps each goal to its seven session names, Monday first.
var weekPlans = map[Goal][7]string{
	GoalBuildMuscle: {
		"Push Day",
		"Pull Day",
		"Leg Day",
		"Rest / Light Cardio",
		"Upper Hypertrophy",
		"Lower Hypertrophy",
		"Rest",
	},
	GoalLoseFat: {
		"Full Body Strength",
		"HIIT Cardio",
		"Rest / Walking",
		"Full Body Circuit",
		"Low Intensity Steady Cardio",
		"Strength + Cardio Mix",
		"Rest",
	},
	GoalEndurance: {
		"Long Run",
		"Cross-Training",
		"Rest / Stretching",
		"Tempo Run",
		"Strength (Leg Focus)",
		"Light Jog",
		"Rest",
	},
}

// genericWeek alternates training and rest for goals without a
// dedicated split (Gain Strength, Improve Overall Health).
var genericWeek = [7]string{
	"Training",
	"Rest",
	"Training",
	"Rest",
	"Training",
	"Rest",
	"Training",
}

// prescriptions maps session names to their exercise work. Rest
// sessions are not listed here; they get restPrescription.
var prescriptions = map[string][]Prescription{
	"Push Day": {
		{ExerciseID: "barbell_bench_press", Sets: 4, Reps: 8},
		{ExerciseID: "overhead_press", Sets: 3, Reps: 10},
		{ExerciseID: "incline_dumbbell_press", Sets: 3, Reps: 10},
		{ExerciseID: "lateral_raise", Sets: 3, Reps: 15},
		{ExerciseID: "tricep_pushdown", Sets: 3, Reps: 12},
	},
	"Pull Day": {
		{ExerciseID: "barbell_row", Sets: 4, Reps: 8},
		{ExerciseID: "lat_pulldown", Sets: 3, Reps: 10},
		{ExerciseID: "face_pull", Sets: 3, Reps: 15},
		{ExerciseID: "bicep_curl", Sets: 3, Reps: 12},
	},
	"Leg Day": {
		{ExerciseID: "squat", Sets: 4, Reps: 8},
		{ExerciseID: "romanian_deadlift", Sets: 3, Reps: 10},
		{ExerciseID: "leg_press", Sets: 3, Reps: 12},
		{ExerciseID: "calf_raise", Sets: 4, Reps: 15},
	},
	"Upper Hypertrophy": {
		{ExerciseID: "dumbbell_bench_press", Sets: 4, Reps: 10},
		{ExerciseID: "seated_cable_row", Sets: 4, Reps: 10},
		{ExerciseID: "db_shoulder_press", Sets: 3, Reps: 12},
		{ExerciseID: "hammer_curl", Sets: 3, Reps: 12},
		{ExerciseID: "skull_crusher", Sets: 3, Reps: 12},
	},
	"Lower Hypertrophy": {
		{ExerciseID: "goblet_squat", Sets: 4, Reps: 12},
		{ExerciseID: "hip_thrust", Sets: 4, Reps: 10},
		{ExerciseID: "lunges", Sets: 3, Reps: 12},
		{ExerciseID: "hamstring_curl", Sets: 3, Reps: 12},
		{ExerciseID: "calf_raise", Sets: 4, Reps: 20},
	},
	"Full Body Strength": {
		{ExerciseID: "squat", Sets: 3, Reps: 8},
		{ExerciseID: "bench_press", Sets: 3, Reps: 8},
		{ExerciseID: "barbell_row", Sets: 3, Reps: 8},
		{ExerciseID: "plank", Sets: 3, Reps: 45},
	},
	"HIIT Cardio": {
		{ExerciseID: "sprint_interval_fast", Sets: 10, Reps: 30},
		{ExerciseID: "sprint_interval_rest", Sets: 10, Reps: 60},
	},
	"Full Body Circuit": {
		{ExerciseID: "goblet_squat", Sets: 3, Reps: 15},
		{ExerciseID: "push_up", Sets: 3, Reps: 15},
		{ExerciseID: "mountain_climber", Sets: 3, Reps: 30},
		{ExerciseID: "russian_twist", Sets: 3, Reps: 20},
	},
	"Low Intensity Steady Cardio": {
		{ExerciseID: "steady_state_cardio", Sets: 1, Reps: 45},
	},
	"Strength + Cardio Mix": {
		{ExerciseID: "barbell_row", Sets: 3, Reps: 10},
		{ExerciseID: "push_up", Sets: 3, Reps: 15},
		{ExerciseID: "sprint_interval_fast", Sets: 6, Reps: 30},
		{ExerciseID: "sprint_interval_rest", Sets: 6, Reps: 60},
	},
	"Long Run": {
		{ExerciseID: "long_run", Sets: 1, Reps: 60},
	},
	"Cross-Training": {
		{ExerciseID: "cross_training", Sets: 1, Reps: 45},
	},
	"Tempo Run": {
		{ExerciseID: "tempo_run", Sets: 1, Reps: 30},
	},
	"Strength (Leg Focus)": {
		{ExerciseID: "squat", Sets: 4, Reps: 6},
		{ExerciseID: "lunges", Sets: 3, Reps: 12},
		{ExerciseID: "calf_raise", Sets: 4, Reps: 15},
	},
	"Light Jog": {
		{ExerciseID: "light_jog", Sets: 1, Reps: 30},
	},
	"Training": {
		{ExerciseID: "goblet_squat", Sets: 3, Reps: 10},
		{ExerciseID: "push_up", Sets: 3, Reps: 12},
		{ExerciseID: "barbell_row", Sets: 3, Reps: 10},
		{ExerciseID: "plank", Sets: 3, Reps: 30},
	},
}

// isRestName reports whether a session name denotes a rest slot.
func isRestName(name string) bool {
	return strings.HasPrefix(name, "Rest")
}

// Generate returns the seven-session week for the given goal, or nil
// when the goal is unknown or unset. Rest slots carry the stretch
// placeholder so every returned session has at least one prescription.
func Generate(goal Goal) []Session {
	names, ok := weekPlans[goal]
	if !ok {
		switch goal {
		case GoalGainStrength, GoalImproveHealth:
			names = genericWeek
		default:
			return nil
		}
	}

	sessions := make([]Session, 0, len(names))
	for _, name := range names {
		s := Session{Name: name, Rest: isRestName(name)}
		if s.Rest {
			s.Prescriptions = []Prescription{restPrescription}
		} else {
			src := prescriptions[name]
			s.Prescriptions = make([]Prescription, len(src))
			copy(s.Prescriptions, src)
		}
		sessions = append(sessions, s)
	}
	return sessions
}
