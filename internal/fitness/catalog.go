package fitness

// Exercise is one entry in the built-in exercise catalog.
type Exercise struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Group       string   `json:"group"`
	Muscles     []string `json:"muscles"`
	Equipment   string   `json:"equipment,omitempty"`
	Difficulty  string   `json:"difficulty"`
	GoalTags    []string `json:"goalTags"`
	Type        string   `json:"type"`
	Description string   `json:"-"` // markdown, rendered by the web layer
}

// Exercise types.
const (
	TypeStrength = "strength"
	TypeCardio   = "cardio"
	TypeMobility = "mobility"
)

// Difficulty levels.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Goal tags an exercise serves, matched against training goals when
// browsing the catalog.
const (
	TagStrength    = "strength"
	TagHypertrophy = "hypertrophy"
	TagFatLoss     = "fat_loss"
	TagEndurance   = "endurance"
)

// catalog is the fixed exercise pool. IDs are stable and referenced by
// routines, plans and history entries.
var catalog = []Exercise{
	// Chest
	{ID: "bench_press", Name: "Bench Press", Group: "Chest", Muscles: []string{"chest", "triceps", "shoulders"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagStrength, TagHypertrophy}, Type: TypeStrength,
		Description: "Press a **barbell** from your chest on a flat bench. Keep your feet planted and shoulder blades pinched."},
	{ID: "barbell_bench_press", Name: "Barbell Bench Press", Group: "Chest", Muscles: []string{"chest", "triceps", "shoulders"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagStrength, TagHypertrophy}, Type: TypeStrength,
		Description: "Flat barbell press. Lower the bar to mid-chest with control and drive up without bouncing."},
	{ID: "incline_bench_press", Name: "Incline Bench Press", Group: "Chest", Muscles: []string{"upper chest", "triceps", "shoulders"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Barbell press on a 30° incline, shifting work to the upper chest."},
	{ID: "dumbbell_bench_press", Name: "Dumbbell Bench Press", Group: "Chest", Muscles: []string{"chest", "triceps"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Flat press with dumbbells for a longer range of motion than the barbell."},
	{ID: "incline_dumbbell_press", Name: "Incline Dumbbell Press", Group: "Chest", Muscles: []string{"chest", "shoulders"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Dumbbell press on an incline bench."},
	{ID: "push_up", Name: "Push-Up", Group: "Chest", Muscles: []string{"chest", "triceps"},
		Equipment: "Bodyweight", Difficulty: DifficultyBeginner, GoalTags: []string{TagFatLoss, TagEndurance}, Type: TypeStrength,
		Description: "Classic bodyweight press. Keep a straight line from head to heels."},
	{ID: "chest_fly", Name: "Chest Fly", Group: "Chest", Muscles: []string{"chest"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Open your arms wide with a slight elbow bend, then squeeze the dumbbells together over your chest."},
	{ID: "cable_fly", Name: "Cable Fly", Group: "Chest", Muscles: []string{"chest"},
		Equipment: "Cable", Difficulty: DifficultyIntermediate, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Fly on the cable crossover, keeping constant tension through the arc."},
	{ID: "dips_chest", Name: "Dips (Chest)", Group: "Chest", Muscles: []string{"chest", "triceps", "shoulders"},
		Equipment: "Bodyweight", Difficulty: DifficultyAdvanced, GoalTags: []string{TagStrength, TagHypertrophy}, Type: TypeStrength,
		Description: "Lean forward on parallel bars to bias the chest."},

	// Back
	{ID: "deadlift", Name: "Deadlift", Group: "Back", Muscles: []string{"back", "glutes", "hamstrings"},
		Equipment: "Barbell", Difficulty: DifficultyAdvanced, GoalTags: []string{TagStrength}, Type: TypeStrength,
		Description: "Hinge at the hips and lift the bar from the floor.\n\n- Brace before every pull\n- Keep the bar against your legs"},
	{ID: "barbell_deadlift", Name: "Barbell Deadlift", Group: "Back", Muscles: []string{"back", "glutes", "hamstrings"},
		Equipment: "Barbell", Difficulty: DifficultyAdvanced, GoalTags: []string{TagStrength}, Type: TypeStrength,
		Description: "Conventional barbell deadlift from the floor."},
	{ID: "pull_up", Name: "Pull-Up", Group: "Back", Muscles: []string{"lats", "biceps"},
		Equipment: "Bodyweight", Difficulty: DifficultyIntermediate, GoalTags: []string{TagStrength, TagHypertrophy}, Type: TypeStrength,
		Description: "Overhand grip, pull your chin over the bar without swinging."},
	{ID: "chin_up", Name: "Chin-Up", Group: "Back", Muscles: []string{"lats", "biceps"},
		Equipment: "Bodyweight", Difficulty: DifficultyIntermediate, GoalTags: []string{TagStrength, TagHypertrophy}, Type: TypeStrength,
		Description: "Underhand pull-up with more biceps involvement."},
	{ID: "lat_pulldown", Name: "Lat Pulldown", Group: "Back", Muscles: []string{"lats"},
		Equipment: "Machine", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Pull the bar to your upper chest, driving elbows down and back."},
	{ID: "barbell_row", Name: "Barbell Row", Group: "Back", Muscles: []string{"lats", "upper back"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagStrength}, Type: TypeStrength,
		Description: "Hinge forward and row the bar to your lower ribs."},
	{ID: "seated_cable_row", Name: "Seated Cable Row", Group: "Back", Muscles: []string{"back", "biceps"},
		Equipment: "Cable", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Row the handle to your stomach with a tall chest."},
	{ID: "single_arm_db_row", Name: "Single-Arm Dumbbell Row", Group: "Back", Muscles: []string{"lats", "back"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "One knee on the bench, row the dumbbell to your hip."},
	{ID: "face_pull", Name: "Face Pull", Group: "Back", Muscles: []string{"rear delts", "upper back"},
		Equipment: "Cable", Difficulty: DifficultyBeginner, GoalTags: []string{TagEndurance, TagHypertrophy}, Type: TypeStrength,
		Description: "Pull the rope toward your face with elbows high. Good for rear delts and posture."},
	{ID: "back_extension", Name: "Back Extension", Group: "Back", Muscles: []string{"lower back", "glutes"},
		Equipment: "Bodyweight", Difficulty: DifficultyBeginner, GoalTags: []string{TagStrength}, Type: TypeStrength,
		Description: "Hinge over the pad and extend the spine to neutral, no hyperextension."},

	// Legs
	{ID: "squat", Name: "Squat", Group: "Legs", Muscles: []string{"quads", "glutes", "core"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagStrength}, Type: TypeStrength,
		Description: "Barbell back squat.\n\n- Brace your core\n- Sit between your hips\n- Drive through mid-foot"},
	{ID: "barbell_squat", Name: "Barbell Squat", Group: "Legs", Muscles: []string{"quads", "glutes", "core"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagStrength}, Type: TypeStrength,
		Description: "Back squat with the bar on your traps."},
	{ID: "back_squat", Name: "Back Squat", Group: "Legs", Muscles: []string{"quads", "glutes", "core"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagStrength}, Type: TypeStrength,
		Description: "High-bar back squat to parallel or below."},
	{ID: "front_squat", Name: "Front Squat", Group: "Legs", Muscles: []string{"quads", "core"},
		Equipment: "Barbell", Difficulty: DifficultyAdvanced, GoalTags: []string{TagStrength}, Type: TypeStrength,
		Description: "Bar racked on the front delts, torso upright."},
	{ID: "leg_press", Name: "Leg Press", Group: "Legs", Muscles: []string{"quads", "glutes"},
		Equipment: "Machine", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Press the sled without letting your lower back round off the pad."},
	{ID: "lunges", Name: "Lunges", Group: "Legs", Muscles: []string{"quads", "glutes"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagEndurance, TagFatLoss}, Type: TypeStrength,
		Description: "Step forward and lower until both knees reach about 90°."},
	{ID: "romanian_deadlift", Name: "Romanian Deadlift", Group: "Legs", Muscles: []string{"hamstrings", "glutes"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagStrength, TagHypertrophy}, Type: TypeStrength,
		Description: "Hip hinge with soft knees, lowering the bar along your legs until the hamstrings load."},
	{ID: "hamstring_curl", Name: "Hamstring Curl", Group: "Legs", Muscles: []string{"hamstrings"},
		Equipment: "Machine", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Curl the pad toward your glutes with a controlled negative."},
	{ID: "leg_extension", Name: "Leg Extension", Group: "Legs", Muscles: []string{"quads"},
		Equipment: "Machine", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Extend your knees against the pad, pausing briefly at the top."},
	{ID: "calf_raise", Name: "Calf Raise", Group: "Legs", Muscles: []string{"calves"},
		Equipment: "Machine", Difficulty: DifficultyBeginner, GoalTags: []string{TagEndurance}, Type: TypeStrength,
		Description: "Full stretch at the bottom, full squeeze at the top."},
	{ID: "bulgarian_split_squat", Name: "Bulgarian Split Squat", Group: "Legs", Muscles: []string{"glutes", "quads"},
		Equipment: "Dumbbells", Difficulty: DifficultyAdvanced, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Rear foot elevated, lower straight down over the front foot."},
	{ID: "goblet_squat", Name: "Goblet Squat", Group: "Legs", Muscles: []string{"quads", "glutes"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagFatLoss, TagHypertrophy}, Type: TypeStrength,
		Description: "Hold one dumbbell at your chest and squat between your heels."},
	{ID: "hip_thrust", Name: "Hip Thrust", Group: "Legs", Muscles: []string{"glutes"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Shoulders on a bench, drive the bar up with your glutes to full hip extension."},

	// Shoulders
	{ID: "overhead_press", Name: "Overhead Press", Group: "Shoulders", Muscles: []string{"shoulders", "triceps"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagStrength}, Type: TypeStrength,
		Description: "Standing barbell press overhead. Squeeze your glutes to keep the ribs down."},
	{ID: "db_shoulder_press", Name: "Dumbbell Shoulder Press", Group: "Shoulders", Muscles: []string{"shoulders", "triceps"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy, TagStrength}, Type: TypeStrength,
		Description: "Seated or standing press with dumbbells."},
	{ID: "machine_shoulder_press", Name: "Machine Shoulder Press", Group: "Shoulders", Muscles: []string{"shoulders"},
		Equipment: "Machine", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Guided overhead press."},
	{ID: "lateral_raise", Name: "Lateral Raise", Group: "Shoulders", Muscles: []string{"side delts"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Raise the dumbbells to shoulder height with a slight forward lean. Light weight, strict form."},
	{ID: "cable_lateral_raise", Name: "Cable Lateral Raise", Group: "Shoulders", Muscles: []string{"side delts"},
		Equipment: "Cable", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Lateral raise against a low cable for constant tension."},
	{ID: "front_raise", Name: "Front Raise", Group: "Shoulders", Muscles: []string{"front delts"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Raise the dumbbells straight in front to eye level."},
	{ID: "rear_delt_fly", Name: "Rear Delt Fly", Group: "Shoulders", Muscles: []string{"rear delts"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Hinge forward and open your arms wide, thumbs slightly down."},
	{ID: "arnold_press", Name: "Arnold Press", Group: "Shoulders", Muscles: []string{"delts"},
		Equipment: "Dumbbells", Difficulty: DifficultyIntermediate, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Rotate the dumbbells from palms-in to palms-forward as you press."},
	{ID: "upright_row", Name: "Upright Row", Group: "Shoulders", Muscles: []string{"side delts", "traps"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Pull the bar along your body to chest height, elbows leading."},

	// Arms
	{ID: "bicep_curl", Name: "Bicep Curl", Group: "Arms", Muscles: []string{"biceps"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Curl without swinging. Control the lowering half."},
	{ID: "hammer_curl", Name: "Hammer Curl", Group: "Arms", Muscles: []string{"biceps"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Neutral-grip curl hitting the brachialis."},
	{ID: "preacher_curl", Name: "Preacher Curl", Group: "Arms", Muscles: []string{"biceps"},
		Equipment: "Barbell", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Curl with upper arms fixed on the preacher pad."},
	{ID: "concentration_curl", Name: "Concentration Curl", Group: "Arms", Muscles: []string{"biceps"},
		Equipment: "Dumbbells", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Elbow braced against your inner thigh, strict single-arm curl."},
	{ID: "cable_curl", Name: "Cable Curl", Group: "Arms", Muscles: []string{"biceps"},
		Equipment: "Cable", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Curl against a low cable."},
	{ID: "tricep_pushdown", Name: "Tricep Pushdown", Group: "Arms", Muscles: []string{"triceps"},
		Equipment: "Cable", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Elbows pinned to your sides, press the cable to lockout."},
	{ID: "skull_crusher", Name: "Skull Crusher", Group: "Arms", Muscles: []string{"triceps"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Lying triceps extension, lowering the bar to your forehead."},
	{ID: "close_grip_bench", Name: "Close-Grip Bench Press", Group: "Arms", Muscles: []string{"triceps", "chest"},
		Equipment: "Barbell", Difficulty: DifficultyIntermediate, GoalTags: []string{TagStrength}, Type: TypeStrength,
		Description: "Bench press with a shoulder-width grip to load the triceps."},
	{ID: "cable_kickback", Name: "Cable Kickback", Group: "Arms", Muscles: []string{"triceps"},
		Equipment: "Cable", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Extend the arm straight back against the cable."},

	// Core
	{ID: "plank", Name: "Plank", Group: "Core", Muscles: []string{"core"},
		Equipment: "Bodyweight", Difficulty: DifficultyBeginner, GoalTags: []string{TagEndurance}, Type: TypeStrength,
		Description: "Hold a straight line on your forearms. Reps are seconds held."},
	{ID: "crunch", Name: "Crunch", Group: "Core", Muscles: []string{"abs"},
		Equipment: "Bodyweight", Difficulty: DifficultyBeginner, GoalTags: []string{TagHypertrophy, TagFatLoss}, Type: TypeStrength,
		Description: "Curl your shoulder blades off the floor, exhaling at the top."},
	{ID: "sit_up", Name: "Sit-Up", Group: "Core", Muscles: []string{"abs"},
		Equipment: "Bodyweight", Difficulty: DifficultyBeginner, GoalTags: []string{TagEndurance}, Type: TypeStrength,
		Description: "Full sit-up to vertical."},
	{ID: "hanging_leg_raise", Name: "Hanging Leg Raise", Group: "Core", Muscles: []string{"abs", "hip flexors"},
		Equipment: "Bodyweight", Difficulty: DifficultyAdvanced, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Hang from a bar and raise straight legs to horizontal without swinging."},
	{ID: "russian_twist", Name: "Russian Twist", Group: "Core", Muscles: []string{"obliques"},
		Equipment: "Bodyweight", Difficulty: DifficultyBeginner, GoalTags: []string{TagFatLoss, TagEndurance}, Type: TypeStrength,
		Description: "Seated, lean back and rotate side to side. One rep per side."},
	{ID: "cable_crunch", Name: "Cable Crunch", Group: "Core", Muscles: []string{"abs"},
		Equipment: "Cable", Difficulty: DifficultyIntermediate, GoalTags: []string{TagHypertrophy}, Type: TypeStrength,
		Description: "Kneeling crunch against a high cable."},
	{ID: "leg_raises", Name: "Leg Raises", Group: "Core", Muscles: []string{"abs"},
		Equipment: "Bodyweight", Difficulty: DifficultyBeginner, GoalTags: []string{TagEndurance}, Type: TypeStrength,
		Description: "Lying straight-leg raises, lower back pressed into the floor."},
	{ID: "mountain_climber", Name: "Mountain Climber", Group: "Core", Muscles: []string{"core", "hip flexors"},
		Equipment: "Bodyweight", Difficulty: DifficultyBeginner, GoalTags: []string{TagFatLoss, TagEndurance}, Type: TypeStrength,
		Description: "From a push-up position, drive your knees alternately to your chest. Reps are seconds."},
	{ID: "bicycle_crunch", Name: "Bicycle Crunch", Group: "Core", Muscles: []string{"abs", "obliques"},
		Equipment: "Bodyweight", Difficulty: DifficultyBeginner, GoalTags: []string{TagFatLoss}, Type: TypeStrength,
		Description: "Alternate elbow to opposite knee in a pedaling motion."},
	{ID: "flutter_kick", Name: "Flutter Kick", Group: "Core", Muscles: []string{"lower abs"},
		Equipment: "Bodyweight", Difficulty: DifficultyBeginner, GoalTags: []string{TagEndurance}, Type: TypeStrength,
		Description: "Small alternating leg kicks with your lower back flat."},

	// Cardio
	{ID: "sprint_interval_fast", Name: "Sprint Interval (Fast)", Group: "Cardio", Muscles: []string{"legs"},
		Difficulty: DifficultyAdvanced, GoalTags: []string{TagFatLoss}, Type: TypeCardio,
		Description: "All-out sprint effort. Reps are seconds of work."},
	{ID: "sprint_interval_rest", Name: "Sprint Interval (Recovery)", Group: "Cardio", Muscles: []string{"legs"},
		Difficulty: DifficultyBeginner, GoalTags: []string{TagFatLoss}, Type: TypeCardio,
		Description: "Easy walk or jog between sprints. Reps are seconds of recovery."},
	{ID: "steady_state_cardio", Name: "Steady State Cardio", Group: "Cardio", Muscles: []string{"full body"},
		Difficulty: DifficultyBeginner, GoalTags: []string{TagFatLoss, TagEndurance}, Type: TypeCardio,
		Description: "Continuous low-intensity effort. You should be able to hold a conversation. Reps are minutes."},
	{ID: "light_jog", Name: "Light Jog", Group: "Cardio", Muscles: []string{"legs"},
		Difficulty: DifficultyBeginner, GoalTags: []string{TagEndurance}, Type: TypeCardio,
		Description: "Relaxed recovery jog. Reps are minutes."},
	{ID: "long_run", Name: "Long Run", Group: "Cardio", Muscles: []string{"legs"},
		Difficulty: DifficultyIntermediate, GoalTags: []string{TagEndurance}, Type: TypeCardio,
		Description: "Extended run at an easy pace to build aerobic base. Reps are minutes."},
	{ID: "tempo_run", Name: "Tempo Run", Group: "Cardio", Muscles: []string{"legs"},
		Difficulty: DifficultyIntermediate, GoalTags: []string{TagEndurance}, Type: TypeCardio,
		Description: "Comfortably hard pace you could hold for about an hour. Reps are minutes."},
	{ID: "cross_training", Name: "Cross-Training", Group: "Cardio", Muscles: []string{"full body"},
		Difficulty: DifficultyBeginner, GoalTags: []string{TagEndurance, TagFatLoss}, Type: TypeCardio,
		Description: "Bike, row or swim at moderate effort. Reps are minutes."},

	// Mobility
	{ID: "stretch", Name: "Full Body Stretch", Group: "Mobility", Muscles: []string{"full body"},
		Difficulty: DifficultyBeginner, GoalTags: []string{TagEndurance}, Type: TypeMobility,
		Description: "Gentle full-body stretching for rest days. Hold each position for about 30 seconds."},
}

// catalogIndex maps exercise IDs to catalog positions.
var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, e := range catalog {
		idx[e.ID] = i
	}
	return idx
}()

// Catalog returns the full exercise catalog in display order.
func Catalog() []Exercise {
	out := make([]Exercise, len(catalog))
	copy(out, catalog)
	return out
}

// ExerciseByID looks up a catalog exercise. The second return value
// reports whether the ID is known.
func ExerciseByID(id string) (Exercise, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return Exercise{}, false
	}
	return catalog[i], true
}

// MuscleGroups returns the distinct muscle groups in catalog order.
func MuscleGroups() []string {
	var groups []string
	seen := map[string]bool{}
	for _, e := range catalog {
		if !seen[e.Group] {
			seen[e.Group] = true
			groups = append(groups, e.Group)
		}
	}
	return groups
}
