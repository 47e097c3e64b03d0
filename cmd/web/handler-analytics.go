package main

import (
	"errors"
	"net/http"

	"github.com/stronghold-fit/stronghold/internal/checkin"
)

func (app *application) analyticsSummaryGET(w http.ResponseWriter, r *http.Request) {
	summary, err := app.analyticsService.Summary(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, summary)
}

func (app *application) encouragementGET(w http.ResponseWriter, r *http.Request) {
	today, err := app.checkinService.Today(r.Context())
	if err != nil {
		if errors.Is(err, checkin.ErrNotFound) {
			app.clientError(w, r, http.StatusConflict, "submit today's check-in before requesting encouragement")
			return
		}
		app.serverError(w, r, err)
		return
	}

	verse := app.aiClient.Encouragement(r.Context(), today)
	app.writeJSON(w, r, http.StatusOK, verse)
}
