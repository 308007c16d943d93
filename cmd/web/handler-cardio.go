package main

import (
	"io"
	"net/http"

	"github.com/mkettu/fitweek/internal/errors"
	"github.com/mkettu/fitweek/internal/fitness"
)

func (app *application) cardioStartPOST(w http.ResponseWriter, r *http.Request) {
	err := app.fitnessService.StartCardio(r.Context())
	if errors.Is(err, fitness.ErrCardioAlreadyRunning) {
		app.clientError(w, r, http.StatusConflict, "cardio session already running")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (app *application) cardioStatusGET(w http.ResponseWriter, r *http.Request) {
	running, seconds, err := app.fitnessService.CardioStatus(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, struct {
		Running bool `json:"running"`
		Seconds int  `json:"seconds"`
	}{Running: running, Seconds: seconds})
}

func (app *application) cardioStopPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Distance float64 `json:"distance"`
		Calories float64 `json:"calories"`
	}
	if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		app.badRequest(w, r, err)
		return
	}

	entry, err := app.fitnessService.StopCardio(r.Context(), req.Distance, req.Calories)
	if errors.Is(err, fitness.ErrCardioNotRunning) {
		app.clientError(w, r, http.StatusConflict, "no cardio session running")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, historyEntryResponse{ID: entry.ID, HistoryEntry: entry})
}

func (app *application) cardioCancelPOST(w http.ResponseWriter, r *http.Request) {
	err := app.fitnessService.CancelCardio(r.Context())
	if errors.Is(err, fitness.ErrCardioNotRunning) {
		app.clientError(w, r, http.StatusConflict, "no cardio session running")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
