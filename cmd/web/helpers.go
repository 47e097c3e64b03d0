package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/substitution"
	"github.com/stronghold-fit/stronghold/internal/workout"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", slog.Any("error", err))
	if wantsHTML(r) {
		app.render(w, r, http.StatusInternalServerError, "error", newBaseTemplateData(r))
		return
	}
	app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	if wantsHTML(r) {
		app.render(w, r, http.StatusNotFound, "not-found", newBaseTemplateData(r))
		return
	}
	app.clientError(w, r, http.StatusNotFound, "not found")
}

func wantsHTML(r *http.Request) bool {
	return !strings.HasPrefix(r.URL.Path, "/api/")
}

// redirect detects if the request is originating from a fetch API call or a top-level navigation and points the user
// to the correct URL.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("Sec-Fetch-Dest") == "empty" {
		w.Header().Set("Content-Location", path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", slog.Any("error", err))
	}
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.writeJSON(w, r, status, errorResponse{Error: message})
}

// readJSON decodes the request body into dst, rejecting unknown fields.
func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		app.clientError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// domainError translates service errors into API responses. Unrecognized
// errors become 500s.
func (app *application) domainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, workout.ErrNotFound) || errors.Is(err, checkin.ErrNotFound):
		app.clientError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, workout.ErrConflict):
		app.clientError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, workout.ErrParse):
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, substitution.ErrNoEligible):
		app.clientError(w, r, http.StatusNotFound, err.Error())
	default:
		app.serverError(w, r, err)
	}
}
