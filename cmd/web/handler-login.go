package main

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
)

type loginRequest struct {
	Passcode string `json:"passcode"`
}

// loginPOST checks the passcode and marks the session authenticated. It
// accepts both a JSON body and the home page login form.
func (app *application) loginPOST(w http.ResponseWriter, r *http.Request) {
	var passcode string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req loginRequest
		if !app.readJSON(w, r, &req) {
			return
		}
		passcode = req.Passcode
	} else {
		if err := r.ParseForm(); err != nil {
			app.clientError(w, r, http.StatusBadRequest, fmt.Sprintf("parse form: %v", err))
			return
		}
		passcode = r.PostFormValue("passcode")
	}

	if subtle.ConstantTimeCompare([]byte(passcode), []byte(app.passcode)) != 1 {
		app.clientError(w, r, http.StatusUnauthorized, "wrong passcode")
		return
	}

	// Renew the token on privilege change.
	if err := app.sessionManager.RenewToken(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.sessionManager.Put(r.Context(), sessionKeyAuthenticated, true)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	redirect(w, r, "/")
}
