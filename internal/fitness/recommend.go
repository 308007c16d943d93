package fitness

import "slices"

// GroupCount is one muscle group's training volume with its stable
// sort code.
type GroupCount struct {
	Group string `json:"group"`
	Count int    `json:"count"`
	Code  int    `json:"code"`
}

// strengthGroups are the muscle groups considered for focus
// recommendations, with their codes. Cardio and mobility work does not
// compete with strength volume.
var strengthGroups = []GroupCount{
	{Group: "Chest", Code: 1},
	{Group: "Back", Code: 2},
	{Group: "Legs", Code: 3},
	{Group: "Shoulders", Code: 4},
	{Group: "Arms", Code: 5},
	{Group: "Core", Code: 6},
}

// sortGroupCounts orders groups least-trained first. The sort is stable
// and ties break on the group code, so equal counts always come out in
// the same order. The input is not modified.
func sortGroupCounts(counts []GroupCount) []GroupCount {
	sorted := make([]GroupCount, len(counts))
	copy(sorted, counts)
	slices.SortStableFunc(sorted, func(a, b GroupCount) int {
		if a.Count != b.Count {
			return a.Count - b.Count
		}
		return a.Code - b.Code
	})
	return sorted
}

// recommendedFocus counts performed sets per muscle group and returns
// the groups least-trained first, so the front of the list is what the
// user should prioritize. Every strength group appears even with zero
// volume.
func recommendedFocus(entries []HistoryEntry) []GroupCount {
	counts := make([]GroupCount, len(strengthGroups))
	copy(counts, strengthGroups)
	index := map[string]int{}
	for i, g := range counts {
		index[g.Group] = i
	}
	for _, entry := range entries {
		if !countsExercise(entry.Type) {
			continue
		}
		exercise, ok := ExerciseByID(entry.ExerciseID)
		if !ok {
			continue
		}
		if i, ok := index[exercise.Group]; ok {
			counts[i].Count += max(entry.Sets, 1)
		}
	}
	return sortGroupCounts(counts)
}
