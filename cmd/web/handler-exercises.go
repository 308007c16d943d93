package main

import (
	"bytes"
	"net/http"

	"github.com/mkettu/fitweek/internal/errors"
	"github.com/mkettu/fitweek/internal/fitness"
	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

// exercisesGET lists the catalog, optionally filtered by muscle group.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")
	var exercises []fitness.Exercise
	for _, exercise := range fitness.Catalog() {
		if group == "" || exercise.Group == group {
			exercises = append(exercises, exercise)
		}
	}
	app.writeJSON(w, r, http.StatusOK, struct {
		Groups    []string           `json:"groups"`
		Exercises []fitness.Exercise `json:"exercises"`
	}{Groups: fitness.MuscleGroups(), Exercises: exercises})
}

// exerciseGET returns one catalog exercise with its description
// rendered from markdown to HTML.
func (app *application) exerciseGET(w http.ResponseWriter, r *http.Request) {
	exercise, ok := fitness.ExerciseByID(r.PathValue("id"))
	if !ok {
		app.notFound(w, r)
		return
	}

	var description bytes.Buffer
	if err := markdown.Convert([]byte(exercise.Description), &description); err != nil {
		app.serverError(w, r, errors.Wrap(err, "render exercise description"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, struct {
		fitness.Exercise
		DescriptionHTML string `json:"descriptionHtml"`
	}{Exercise: exercise, DescriptionHTML: description.String()})
}
