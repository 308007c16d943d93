package main

import (
	"net/http"
	"time"

	"github.com/mkettu/fitweek/internal/errors"
	"github.com/mkettu/fitweek/internal/fitness"
)

// historyEntryResponse carries a history entry with its ID.
type historyEntryResponse struct {
	ID string `json:"id"`
	fitness.HistoryEntry
}

// workoutLogPOST records a single manually logged set.
func (app *application) workoutLogPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExerciseID string    `json:"exerciseId"`
		Weight     float64   `json:"weight"`
		Sets       int       `json:"sets"`
		Reps       int       `json:"reps"`
		Date       time.Time `json:"date"`
	}
	if err := readJSON(r, &req); err != nil {
		app.badRequest(w, r, err)
		return
	}

	entry, err := app.fitnessService.LogManualSet(r.Context(), req.ExerciseID, req.Weight, req.Sets, req.Reps, req.Date)
	if errors.Is(err, fitness.ErrUnknownExercise) || errors.Is(err, fitness.ErrInvalidRoutine) {
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, historyEntryResponse{ID: entry.ID, HistoryEntry: entry})
}
