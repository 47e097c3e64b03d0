package main

import (
	"net/http"
	"strconv"

	"github.com/stronghold-fit/stronghold/internal/checkin"
)

const defaultRecentCheckIns = 7

func (app *application) checkinPOST(w http.ResponseWriter, r *http.Request) {
	var c checkin.CheckIn
	if !app.readJSON(w, r, &c) {
		return
	}

	if err := c.Validate(); err != nil {
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	saved, err := app.checkinService.Submit(r.Context(), c)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, saved)
}

func (app *application) checkinTodayGET(w http.ResponseWriter, r *http.Request) {
	c, err := app.checkinService.Today(r.Context())
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, c)
}

func (app *application) checkinRecentGET(w http.ResponseWriter, r *http.Request) {
	n := defaultRecentCheckIns
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			app.clientError(w, r, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}

	checkIns, err := app.checkinService.Recent(r.Context(), n)
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	if checkIns == nil {
		checkIns = []checkin.CheckIn{}
	}
	app.writeJSON(w, r, http.StatusOK, checkIns)
}
