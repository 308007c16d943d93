package main

import (
	"net/http"

	"github.com/mkettu/fitweek/internal/errors"
	"github.com/mkettu/fitweek/internal/fitness"
)

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.fitnessService.Profile(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, profile)
}

func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Weight     float64 `json:"weight"`
		Height     float64 `json:"height"`
		Age        int     `json:"age"`
		Goal       string  `json:"goal"`
		Experience string  `json:"experience"`
	}
	if err := readJSON(r, &req); err != nil {
		app.badRequest(w, r, err)
		return
	}

	profile := fitness.Profile{
		Weight:     req.Weight,
		Height:     req.Height,
		Age:        req.Age,
		Goal:       req.Goal,
		Experience: req.Experience,
	}
	err := app.fitnessService.SaveProfile(r.Context(), profile)
	if errors.Is(err, fitness.ErrUnknownGoal) {
		app.clientError(w, r, http.StatusUnprocessableEntity, "unknown fitness goal")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	saved, err := app.fitnessService.Profile(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, saved)
}
