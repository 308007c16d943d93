package main

import (
	"io"
	"net/http"

	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/errors"
	"github.com/mkettu/fitweek/internal/fitness"
	"github.com/mkettu/fitweek/internal/ptr"
)

// scheduleGET returns the resolved seven-day week view.
func (app *application) scheduleGET(w http.ResponseWriter, r *http.Request) {
	week, err := app.fitnessService.WeekSchedule(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, struct {
		Days []fitness.DayAssignment `json:"days"`
	}{Days: week})
}

// schedulePlanGET previews what generation would produce for the user's
// goal without writing anything.
func (app *application) schedulePlanGET(w http.ResponseWriter, r *http.Request) {
	preview, err := app.fitnessService.PreviewPlan(r.Context())
	if errors.Is(err, fitness.ErrNoGoal) {
		app.clientError(w, r, http.StatusUnprocessableEntity, "set a fitness goal first")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, preview)
}

// scheduleGeneratePOST generates routines for the user's goal and
// assigns them to the week. When a generated set already exists the
// client must say whether to replace it; without a decision the request
// is rejected with 409 so the client can prompt.
func (app *application) scheduleGeneratePOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Replace *bool `json:"replace"`
	}
	// An empty body means "no decision made yet".
	if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		app.badRequest(w, r, err)
		return
	}

	if req.Replace == nil {
		preview, err := app.fitnessService.PreviewPlan(r.Context())
		if errors.Is(err, fitness.ErrNoGoal) {
			app.clientError(w, r, http.StatusUnprocessableEntity, "set a fitness goal first")
			return
		}
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		if preview.HasGenerated {
			app.clientError(w, r, http.StatusConflict,
				"a generated plan already exists; set replace to true or false")
			return
		}
		req.Replace = ptr.Ref(false)
	}

	err := app.fitnessService.ApplyPlan(r.Context(), *req.Replace)
	if errors.Is(err, fitness.ErrNoGoal) {
		app.clientError(w, r, http.StatusUnprocessableEntity, "set a fitness goal first")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	week, err := app.fitnessService.WeekSchedule(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, struct {
		Days []fitness.DayAssignment `json:"days"`
	}{Days: week})
}

// scheduleDayPUT points a single weekday slot at a routine.
func (app *application) scheduleDayPUT(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoutineID string `json:"routineId"`
	}
	if err := readJSON(r, &req); err != nil {
		app.badRequest(w, r, err)
		return
	}

	err := app.fitnessService.AssignDay(r.Context(), r.PathValue("day"), req.RoutineID)
	if errors.Is(err, fitness.ErrInvalidDay) {
		app.clientError(w, r, http.StatusBadRequest, "day must be day1 through day7")
		return
	}
	if errors.Is(err, docstore.ErrNotFound) {
		app.clientError(w, r, http.StatusNotFound, "routine not found")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
