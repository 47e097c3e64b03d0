package main

import (
	"errors"
	"net/http"

	"github.com/stronghold-fit/stronghold/internal/analytics"
	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/contexthelpers"
	"github.com/stronghold-fit/stronghold/internal/workout"
)

type homeTemplateData struct {
	BaseTemplateData
	// Summary holds the progress statistics shown on the dashboard.
	Summary analytics.Summary
	// CheckedIn indicates whether today's check-in has been submitted.
	CheckedIn bool
	// Workout is today's workout, if one has been drafted.
	Workout *workout.Workout
}

// TotalSets counts the sets of today's workout, skipped exercises excluded.
func (d homeTemplateData) TotalSets() int {
	if d.Workout == nil {
		return 0
	}
	total := 0
	for _, e := range d.Workout.Exercises() {
		if e.Skipped {
			continue
		}
		total += len(e.Sets)
	}
	return total
}

// CompletedSets counts the sets already logged in today's workout.
func (d homeTemplateData) CompletedSets() int {
	if d.Workout == nil {
		return 0
	}
	done := 0
	for _, e := range d.Workout.Exercises() {
		for _, s := range e.Sets {
			if s.Completed {
				done++
			}
		}
	}
	return done
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
	}

	if !contexthelpers.IsAuthenticated(r.Context()) {
		app.render(w, r, http.StatusOK, "home", data)
		return
	}

	summary, err := app.analyticsService.Summary(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	data.Summary = summary

	if _, err = app.checkinService.Today(r.Context()); err == nil {
		data.CheckedIn = true
	} else if !errors.Is(err, checkin.ErrNotFound) {
		app.serverError(w, r, err)
		return
	}

	today, err := app.workoutService.Today(r.Context())
	switch {
	case err == nil:
		data.Workout = &today
	case errors.Is(err, workout.ErrNotFound):
		// No workout drafted yet. The dashboard shows a prompt instead.
	default:
		app.serverError(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "home", data)
}
