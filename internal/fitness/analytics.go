package fitness

import (
	"context"
	"fmt"
)

// NameCount pairs a label with how many times it appears.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CardioPoint is one date in the cardio distance series. Label is a
// month/day key like "3/14".
type CardioPoint struct {
	Label string  `json:"label"`
	Miles float64 `json:"miles"`
}

// Analytics is the aggregated view over the user's history.
type Analytics struct {
	ExerciseFrequency []NameCount        `json:"exerciseFrequency"`
	RoutineFrequency  []NameCount        `json:"routineFrequency"`
	PersonalRecords   map[string]float64 `json:"personalRecords"`
	WeeklyCardio      []CardioPoint      `json:"weeklyCardio"`
	RecommendedFocus  []GroupCount       `json:"recommendedFocus"`
}

// prBuckets maps catalog exercise IDs to personal record categories.
// Only the three powerlifting categories are tracked; accessory
// variants like leg press deliberately map to nothing.
var prBuckets = map[string]string{
	"bench_press":          "bench_press",
	"barbell_bench_press":  "bench_press",
	"dumbbell_bench_press": "bench_press",
	"squat":                "squat",
	"barbell_squat":        "squat",
	"back_squat":           "squat",
	"front_squat":          "squat",
	"deadlift":             "deadlift",
	"barbell_deadlift":     "deadlift",
}

// countsExercise reports whether an entry type represents performed
// exercise work.
func countsExercise(t EntryType) bool {
	return t == EntryManual || t == EntryRoutineChild
}

// exerciseFrequency counts performed exercises by name, ordered by
// first occurrence in the input.
func exerciseFrequency(entries []HistoryEntry) []NameCount {
	var out []NameCount
	index := map[string]int{}
	for _, entry := range entries {
		if !countsExercise(entry.Type) || entry.Exercise == "" {
			continue
		}
		if i, ok := index[entry.Exercise]; ok {
			out[i].Count++
			continue
		}
		index[entry.Exercise] = len(out)
		out = append(out, NameCount{Name: entry.Exercise, Count: 1})
	}
	return out
}

// routineFrequency counts completed routine sessions by routine name.
func routineFrequency(entries []HistoryEntry) []NameCount {
	var out []NameCount
	index := map[string]int{}
	for _, entry := range entries {
		if entry.Type != EntryRoutine || entry.RoutineName == "" {
			continue
		}
		if i, ok := index[entry.RoutineName]; ok {
			out[i].Count++
			continue
		}
		index[entry.RoutineName] = len(out)
		out = append(out, NameCount{Name: entry.RoutineName, Count: 1})
	}
	return out
}

// personalRecords finds the heaviest logged weight per record category.
// Only positive weights count and a record is replaced only by a
// strictly greater one, so later lighter entries never lower a PR.
func personalRecords(entries []HistoryEntry) map[string]float64 {
	records := map[string]float64{}
	for _, entry := range entries {
		if !countsExercise(entry.Type) || entry.Weight <= 0 {
			continue
		}
		bucket, ok := prBuckets[entry.ExerciseID]
		if !ok {
			continue
		}
		if entry.Weight > records[bucket] {
			records[bucket] = entry.Weight
		}
	}
	return records
}

// weeklyCardio sums cardio distance per month/day key, ordered by first
// occurrence in the input.
func weeklyCardio(entries []HistoryEntry) []CardioPoint {
	var out []CardioPoint
	index := map[string]int{}
	for _, entry := range entries {
		if entry.Type != EntryCardio {
			continue
		}
		label := fmt.Sprintf("%d/%d", int(entry.Date.Month()), entry.Date.Day())
		if i, ok := index[label]; ok {
			out[i].Miles += entry.Distance
			continue
		}
		index[label] = len(out)
		out = append(out, CardioPoint{Label: label, Miles: entry.Distance})
	}
	return out
}

// Analytics aggregates the user's visible history.
func (s *Service) Analytics(ctx context.Context) (Analytics, error) {
	entries, err := s.History(ctx)
	if err != nil {
		return Analytics{}, err
	}
	return Analytics{
		ExerciseFrequency: exerciseFrequency(entries),
		RoutineFrequency:  routineFrequency(entries),
		PersonalRecords:   personalRecords(entries),
		WeeklyCardio:      weeklyCardio(entries),
		RecommendedFocus:  recommendedFocus(entries),
	}, nil
}
