package main

import "net/http"

func (app *application) analyticsGET(w http.ResponseWriter, r *http.Request) {
	analytics, err := app.fitnessService.Analytics(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, analytics)
}
