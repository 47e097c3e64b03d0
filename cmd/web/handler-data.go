package main

import (
	"net/http"
)

// dataDELETE wipes every stored check-in and workout. Meant as the fresh
// start escape hatch, not a routine operation.
func (app *application) dataDELETE(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := app.workoutService.ClearAll(ctx); err != nil {
		app.serverError(w, r, err)
		return
	}
	if err := app.checkinService.ClearAll(ctx); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// dataTodayDELETE removes today's check-in and workouts so the day can be
// redone from scratch.
func (app *application) dataTodayDELETE(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := app.workoutService.ClearToday(ctx); err != nil {
		app.serverError(w, r, err)
		return
	}
	if err := app.checkinService.ClearToday(ctx); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
