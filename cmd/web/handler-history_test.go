package main

import (
	"net/http"
	"testing"

	"github.com/mkettu/fitweek/internal/fitness"
)

type historyResponse struct {
	Entries []struct {
		ID string `json:"id"`
		fitness.HistoryEntry
	} `json:"entries"`
}

func TestManualLogAndHistory(t *testing.T) {
	server := newTestServer(t)
	ctx := t.Context()
	client := server.Client()
	register(t, server)

	status, err := client.JSON(ctx, http.MethodPost, "/api/workouts", map[string]any{
		"exerciseId": "barbell_bench_press",
		"weight":     185.0,
		"sets":       4,
		"reps":       8,
	}, nil)
	if err != nil {
		t.Fatalf("log workout: %v", err)
	}
	if status != http.StatusCreated {
		t.Fatalf("log workout: want 201, got %d", status)
	}

	var history historyResponse
	if err := client.Get(ctx, "/api/history", &history); err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(history.Entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(history.Entries))
	}
	entry := history.Entries[0]
	if entry.Type != fitness.EntryManual || entry.Exercise != "Barbell Bench Press" || entry.Weight != 185 {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestLogUnknownExercise(t *testing.T) {
	server := newTestServer(t)
	register(t, server)

	status, err := server.Client().JSON(t.Context(), http.MethodPost, "/api/workouts", map[string]any{
		"exerciseId": "underwater_basket_weaving",
		"sets":       3,
		"reps":       10,
	}, nil)
	if err != nil {
		t.Fatalf("log workout: %v", err)
	}
	if status != http.StatusUnprocessableEntity {
		t.Errorf("want 422, got %d", status)
	}
}

func TestHistoryDeleteAndUndo(t *testing.T) {
	server := newTestServer(t)
	ctx := t.Context()
	client := server.Client()
	register(t, server)

	var created struct {
		ID string `json:"id"`
	}
	if _, err := client.JSON(ctx, http.MethodPost, "/api/workouts", map[string]any{
		"exerciseId": "squat", "weight": 225.0, "sets": 3, "reps": 5,
	}, &created); err != nil {
		t.Fatalf("log workout: %v", err)
	}

	status, err := client.JSON(ctx, http.MethodDelete, "/api/history/"+created.ID, nil, nil)
	if err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if status != http.StatusAccepted {
		t.Fatalf("delete entry: want 202, got %d", status)
	}

	var history historyResponse
	if err := client.Get(ctx, "/api/history", &history); err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(history.Entries) != 0 {
		t.Fatalf("staged entry should be hidden, got %d entries", len(history.Entries))
	}

	status, err = client.JSON(ctx, http.MethodPost, "/api/history/"+created.ID+"/undo", nil, nil)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if status != http.StatusNoContent {
		t.Fatalf("undo: want 204, got %d", status)
	}

	if err := client.Get(ctx, "/api/history", &history); err != nil {
		t.Fatalf("get history after undo: %v", err)
	}
	if len(history.Entries) != 1 {
		t.Fatalf("entry should be restored, got %d entries", len(history.Entries))
	}

	// A second undo has nothing to restore.
	status, err = client.JSON(ctx, http.MethodPost, "/api/history/"+created.ID+"/undo", nil, nil)
	if err != nil {
		t.Fatalf("second undo: %v", err)
	}
	if status != http.StatusGone {
		t.Errorf("second undo: want 410, got %d", status)
	}
}

func TestRoutineCompletionFeedsAnalytics(t *testing.T) {
	server := newTestServer(t)
	ctx := t.Context()
	client := server.Client()
	register(t, server)

	var routine struct {
		ID string `json:"id"`
	}
	if _, err := client.JSON(ctx, http.MethodPost, "/api/routines", map[string]any{
		"name": "Push Day",
		"exercises": []map[string]any{
			{"id": "barbell_bench_press", "sets": 4, "reps": 8},
			{"id": "overhead_press", "sets": 3, "reps": 10},
		},
	}, &routine); err != nil {
		t.Fatalf("create routine: %v", err)
	}

	status, err := client.JSON(ctx, http.MethodPost, "/api/routines/"+routine.ID+"/complete", map[string]any{
		"performed": []map[string]any{
			{"id": "barbell_bench_press", "weight": 185.0, "sets": 4, "reps": 8},
			{"id": "overhead_press", "weight": 95.0, "sets": 3, "reps": 10},
		},
	}, nil)
	if err != nil {
		t.Fatalf("complete routine: %v", err)
	}
	if status != http.StatusCreated {
		t.Fatalf("complete routine: want 201, got %d", status)
	}

	var analytics fitness.Analytics
	if err := client.Get(ctx, "/api/analytics", &analytics); err != nil {
		t.Fatalf("get analytics: %v", err)
	}
	if got := analytics.PersonalRecords["bench_press"]; got != 185 {
		t.Errorf("bench PR: want 185, got %v", got)
	}
	if len(analytics.RoutineFrequency) != 1 || analytics.RoutineFrequency[0].Name != "Push Day" {
		t.Errorf("unexpected routine frequency: %+v", analytics.RoutineFrequency)
	}
	if len(analytics.RecommendedFocus) == 0 {
		t.Error("recommended focus should never be empty")
	}
}

func TestCardioFlow(t *testing.T) {
	server := newTestServer(t)
	ctx := t.Context()
	client := server.Client()
	register(t, server)

	status, err := client.JSON(ctx, http.MethodPost, "/api/cardio/start", nil, nil)
	if err != nil {
		t.Fatalf("start cardio: %v", err)
	}
	if status != http.StatusCreated {
		t.Fatalf("start cardio: want 201, got %d", status)
	}

	var cardioStatus struct {
		Running bool `json:"running"`
	}
	if err := client.Get(ctx, "/api/cardio", &cardioStatus); err != nil {
		t.Fatalf("cardio status: %v", err)
	}
	if !cardioStatus.Running {
		t.Fatal("cardio should be running")
	}

	var entry struct {
		ID string `json:"id"`
		fitness.HistoryEntry
	}
	status, err = client.JSON(ctx, http.MethodPost, "/api/cardio/stop",
		map[string]any{"distance": 2.5, "calories": 240.0}, &entry)
	if err != nil {
		t.Fatalf("stop cardio: %v", err)
	}
	if status != http.StatusCreated {
		t.Fatalf("stop cardio: want 201, got %d", status)
	}
	if entry.Type != fitness.EntryCardio || entry.Distance != 2.5 {
		t.Errorf("unexpected cardio entry: %+v", entry)
	}
}
