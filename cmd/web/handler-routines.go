package main

import (
	"io"
	"net/http"

	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/errors"
	"github.com/mkettu/fitweek/internal/fitness"
)

// routineResponse carries a routine with its ID, which the domain type
// keeps out of its stored fields.
type routineResponse struct {
	ID string `json:"id"`
	fitness.Routine
}

func toRoutineResponse(r fitness.Routine) routineResponse {
	return routineResponse{ID: r.ID, Routine: r}
}

type routineRequest struct {
	Name      string                 `json:"name"`
	Exercises []fitness.Prescription `json:"exercises"`
}

func (app *application) routinesGET(w http.ResponseWriter, r *http.Request) {
	routines, err := app.fitnessService.Routines(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	out := make([]routineResponse, 0, len(routines))
	for _, routine := range routines {
		out = append(out, toRoutineResponse(routine))
	}
	app.writeJSON(w, r, http.StatusOK, struct {
		Routines []routineResponse `json:"routines"`
	}{Routines: out})
}

func (app *application) routineGET(w http.ResponseWriter, r *http.Request) {
	routine, err := app.fitnessService.Routine(r.Context(), r.PathValue("id"))
	if errors.Is(err, docstore.ErrNotFound) {
		app.notFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, toRoutineResponse(routine))
}

func (app *application) routineCreatePOST(w http.ResponseWriter, r *http.Request) {
	var req routineRequest
	if err := readJSON(r, &req); err != nil {
		app.badRequest(w, r, err)
		return
	}

	routine, err := app.fitnessService.CreateRoutine(r.Context(), req.Name, req.Exercises)
	if errors.Is(err, fitness.ErrInvalidRoutine) || errors.Is(err, fitness.ErrUnknownExercise) {
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, toRoutineResponse(routine))
}

func (app *application) routineUpdatePUT(w http.ResponseWriter, r *http.Request) {
	var req routineRequest
	if err := readJSON(r, &req); err != nil {
		app.badRequest(w, r, err)
		return
	}

	routine, err := app.fitnessService.UpdateRoutine(r.Context(), r.PathValue("id"), req.Name, req.Exercises)
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		app.notFound(w, r)
		return
	case errors.Is(err, fitness.ErrInvalidRoutine), errors.Is(err, fitness.ErrUnknownExercise):
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, toRoutineResponse(routine))
}

func (app *application) routineDELETE(w http.ResponseWriter, r *http.Request) {
	if err := app.fitnessService.DeleteRoutine(r.Context(), r.PathValue("id")); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// routineCompletePOST records a finished routine session. The body may
// carry the exercises as performed; without it the routine's own
// prescriptions are logged.
func (app *application) routineCompletePOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Performed []fitness.PerformedExercise `json:"performed"`
	}
	if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		app.badRequest(w, r, err)
		return
	}

	err := app.fitnessService.CompleteRoutineSession(r.Context(), r.PathValue("id"), req.Performed)
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		app.notFound(w, r)
		return
	case errors.Is(err, fitness.ErrUnknownExercise):
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
