package main

import (
	"net/http"

	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/errors"
	"github.com/mkettu/fitweek/internal/fitness"
)

func (app *application) historyGET(w http.ResponseWriter, r *http.Request) {
	entries, err := app.fitnessService.History(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	out := make([]historyEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, historyEntryResponse{ID: entry.ID, HistoryEntry: entry})
	}
	app.writeJSON(w, r, http.StatusOK, struct {
		Entries []historyEntryResponse `json:"entries"`
	}{Entries: out})
}

// historyEntryDELETE stages an entry for deletion. The client gets an
// undo window before the delete is committed.
func (app *application) historyEntryDELETE(w http.ResponseWriter, r *http.Request) {
	err := app.fitnessService.DeleteHistoryEntry(r.Context(), r.PathValue("id"))
	if errors.Is(err, docstore.ErrNotFound) {
		app.notFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (app *application) historyUndoPOST(w http.ResponseWriter, r *http.Request) {
	err := app.fitnessService.UndoDeleteHistoryEntry(r.Context(), r.PathValue("id"))
	if errors.Is(err, fitness.ErrUndoExpired) {
		app.clientError(w, r, http.StatusGone, "nothing to undo")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) historyClearDELETE(w http.ResponseWriter, r *http.Request) {
	if err := app.fitnessService.ClearHistory(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
