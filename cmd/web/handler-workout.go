package main

import (
	"errors"
	"net/http"

	"github.com/stronghold-fit/stronghold/internal/catalog"
	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/substitution"
	"github.com/stronghold-fit/stronghold/internal/workout"
)

// workoutDraftPOST generates today's workout from the morning check-in.
func (app *application) workoutDraftPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	today, err := app.checkinService.Today(ctx)
	if err != nil {
		if errors.Is(err, checkin.ErrNotFound) {
			app.clientError(w, r, http.StatusConflict, "submit today's check-in before drafting a workout")
			return
		}
		app.domainError(w, r, err)
		return
	}

	history, err := app.checkinService.Recent(ctx, defaultRecentCheckIns)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	drafted, err := app.workoutService.Draft(ctx, today, history)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, drafted)
}

func (app *application) workoutTodayGET(w http.ResponseWriter, r *http.Request) {
	wk, err := app.workoutService.Today(r.Context())
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, wk)
}

func (app *application) workoutGET(w http.ResponseWriter, r *http.Request) {
	wk, err := app.workoutService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, wk)
}

type versionedRequest struct {
	Version int `json:"version"`
}

func (app *application) workoutStartPOST(w http.ResponseWriter, r *http.Request) {
	var req versionedRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	wk, err := app.workoutService.Start(r.Context(), r.PathValue("id"), req.Version)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, wk)
}

type completeSetRequest struct {
	Version    int      `json:"version"`
	Reps       *int     `json:"reps,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

func (app *application) workoutCompleteSetPOST(w http.ResponseWriter, r *http.Request) {
	var req completeSetRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	result := workout.SetResult{
		Reps:       req.Reps,
		Weight:     req.Weight,
		Difficulty: workout.SetDifficulty(req.Difficulty),
		Notes:      req.Notes,
	}
	wk, err := app.workoutService.CompleteSet(r.Context(), r.PathValue("id"), req.Version, result)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, wk)
}

func (app *application) workoutSkipSetPOST(w http.ResponseWriter, r *http.Request) {
	var req versionedRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	wk, err := app.workoutService.SkipSet(r.Context(), r.PathValue("id"), req.Version)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, wk)
}

type skipExerciseRequest struct {
	Version int    `json:"version"`
	Reason  string `json:"reason,omitempty"`
}

func (app *application) workoutSkipExercisePOST(w http.ResponseWriter, r *http.Request) {
	var req skipExerciseRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	wk, err := app.workoutService.SkipExercise(r.Context(), r.PathValue("id"), req.Version, req.Reason)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, wk)
}

func (app *application) workoutAcknowledgeRestPOST(w http.ResponseWriter, r *http.Request) {
	var req versionedRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	wk, err := app.workoutService.AcknowledgeRest(r.Context(), r.PathValue("id"), req.Version)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, wk)
}

type substituteRequest struct {
	Version    int      `json:"version"`
	TemplateID string   `json:"templateId"`
	Sets       int      `json:"sets,omitempty"`
	Reps       *int     `json:"reps,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
}

func (app *application) workoutSubstitutePOST(w http.ResponseWriter, r *http.Request) {
	var req substituteRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	t, ok := catalog.ByID(req.TemplateID)
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "unknown exercise template")
		return
	}
	wk, err := app.workoutService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	// Carry the replaced exercise's set/rep volume unless the request
	// overrides it.
	overrides := substitution.Overrides{
		Sets:   req.Sets,
		Reps:   req.Reps,
		Weight: req.Weight,
	}
	if current := wk.Current(); current != nil && len(current.Sets) > 0 {
		if overrides.Sets == 0 {
			overrides.Sets = len(current.Sets)
		}
		if overrides.Reps == nil {
			overrides.Reps = &current.Sets[0].TargetReps
		}
		if overrides.Weight == nil {
			overrides.Weight = current.Sets[0].TargetWeight
		}
	}
	replacement := substitution.Instantiate(t, overrides)
	wk, err = app.workoutService.Substitute(r.Context(), r.PathValue("id"), req.Version, replacement)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, wk)
}

type finishRequest struct {
	Version   int                      `json:"version"`
	PostCheck checkin.PostWorkoutCheck `json:"postCheck"`
}

func (app *application) workoutFinishPOST(w http.ResponseWriter, r *http.Request) {
	var req finishRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	wk, err := app.workoutService.Finish(r.Context(), r.PathValue("id"), req.Version, req.PostCheck)
	if err != nil {
		if errors.Is(err, workout.ErrConflict) || errors.Is(err, workout.ErrNotFound) {
			app.domainError(w, r, err)
			return
		}
		// Post-workout check validation failures are client errors.
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	app.writeJSON(w, r, http.StatusOK, wk)
}
