package main

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/mkettu/fitweek/internal/contexthelpers"
	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/errors"
)

// account is the stored mapping from a recovery token to a user. The
// token is handed out at registration and is the only way back into an
// account from a new device.
type account struct {
	UserID string `json:"userId"`
}

func accountPath(token string) string {
	return fmt.Sprintf("accounts/%s", token)
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId,omitempty"`
}

// registerPOST creates a fresh anonymous account, signs the session in
// and returns the recovery token the client must keep for later logins.
func (app *application) registerPOST(w http.ResponseWriter, r *http.Request) {
	userID := uuid.NewString()
	token := uuid.NewString()
	if err := app.store.Set(r.Context(), accountPath(token), account{UserID: userID}); err != nil {
		app.serverError(w, r, errors.Wrap(err, "store account"))
		return
	}

	if err := app.sessionManager.RenewToken(r.Context()); err != nil {
		app.serverError(w, r, errors.Wrap(err, "renew session token"))
		return
	}
	app.sessionManager.Put(r.Context(), sessionKeyUserID, userID)

	app.writeJSON(w, r, http.StatusCreated, struct {
		UserID string `json:"userId"`
		Token  string `json:"token"`
	}{UserID: userID, Token: token})
}

// loginPOST signs into an existing account using its recovery token.
func (app *application) loginPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := readJSON(r, &req); err != nil {
		app.badRequest(w, r, err)
		return
	}
	if req.Token == "" {
		app.clientError(w, r, http.StatusBadRequest, "token is required")
		return
	}

	doc, err := app.store.Get(r.Context(), accountPath(req.Token))
	if errors.Is(err, docstore.ErrNotFound) {
		app.clientError(w, r, http.StatusUnauthorized, "unknown token")
		return
	}
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "look up account"))
		return
	}
	var acct account
	if err = doc.Decode(&acct); err != nil {
		app.serverError(w, r, errors.Wrap(err, "decode account"))
		return
	}

	if err = app.sessionManager.RenewToken(r.Context()); err != nil {
		app.serverError(w, r, errors.Wrap(err, "renew session token"))
		return
	}
	app.sessionManager.Put(r.Context(), sessionKeyUserID, acct.UserID)

	app.writeJSON(w, r, http.StatusOK, sessionResponse{Authenticated: true, UserID: acct.UserID})
}

// logoutPOST destroys the session.
func (app *application) logoutPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.sessionManager.Destroy(r.Context()); err != nil {
		app.serverError(w, r, errors.Wrap(err, "destroy session"))
		return
	}
	app.writeJSON(w, r, http.StatusOK, sessionResponse{Authenticated: false})
}

// sessionGET reports who the session belongs to, if anyone.
func (app *application) sessionGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	app.writeJSON(w, r, http.StatusOK, sessionResponse{
		Authenticated: contexthelpers.IsAuthenticated(ctx),
		UserID:        contexthelpers.UserID(ctx),
	})
}
