package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mkettu/fitweek/internal/fitness"
)

func TestExerciseCatalog(t *testing.T) {
	server := newTestServer(t)
	ctx := t.Context()

	var resp struct {
		Groups    []string           `json:"groups"`
		Exercises []fitness.Exercise `json:"exercises"`
	}
	if err := server.Client().Get(ctx, "/api/exercises", &resp); err != nil {
		t.Fatalf("get exercises: %v", err)
	}
	if len(resp.Exercises) == 0 || len(resp.Groups) == 0 {
		t.Fatal("catalog should not be empty")
	}

	if err := server.Client().Get(ctx, "/api/exercises?group=Chest", &resp); err != nil {
		t.Fatalf("get chest exercises: %v", err)
	}
	for _, exercise := range resp.Exercises {
		if exercise.Group != "Chest" {
			t.Errorf("group filter leaked %s (%s)", exercise.ID, exercise.Group)
		}
	}
}

func TestExerciseTemplateFields(t *testing.T) {
	server := newTestServer(t)

	var resp struct {
		ID         string   `json:"id"`
		Muscles    []string `json:"muscles"`
		Difficulty string   `json:"difficulty"`
		GoalTags   []string `json:"goalTags"`
	}
	if err := server.Client().Get(t.Context(), "/api/exercises/bench_press", &resp); err != nil {
		t.Fatalf("get exercise: %v", err)
	}
	if diff := cmp.Diff([]string{"chest", "triceps", "shoulders"}, resp.Muscles); diff != "" {
		t.Errorf("muscles mismatch (-want +got):\n%s", diff)
	}
	if resp.Difficulty != fitness.DifficultyIntermediate {
		t.Errorf("want intermediate difficulty, got %q", resp.Difficulty)
	}
	if diff := cmp.Diff([]string{fitness.TagStrength, fitness.TagHypertrophy}, resp.GoalTags); diff != "" {
		t.Errorf("goal tags mismatch (-want +got):\n%s", diff)
	}
}

func TestExerciseDescriptionRendered(t *testing.T) {
	server := newTestServer(t)

	var resp struct {
		ID              string `json:"id"`
		DescriptionHTML string `json:"descriptionHtml"`
	}
	if err := server.Client().Get(t.Context(), "/api/exercises/bench_press", &resp); err != nil {
		t.Fatalf("get exercise: %v", err)
	}
	if resp.ID != "bench_press" {
		t.Errorf("want bench_press, got %q", resp.ID)
	}
	if !strings.Contains(resp.DescriptionHTML, "<strong>barbell</strong>") {
		t.Errorf("markdown should be rendered to HTML, got %q", resp.DescriptionHTML)
	}
}

func TestUnknownExerciseIs404(t *testing.T) {
	server := newTestServer(t)

	status, err := server.Client().JSON(t.Context(), http.MethodGet, "/api/exercises/nope", nil, nil)
	if err != nil {
		t.Fatalf("get exercise: %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("want 404, got %d", status)
	}
}
