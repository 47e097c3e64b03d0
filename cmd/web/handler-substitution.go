package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/stronghold-fit/stronghold/internal/catalog"
	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/substitution"
)

// healthyScore is assumed for joints when there is no check-in today.
const healthyScore = 10

type substitutionsResponse struct {
	Mode      substitution.Mode  `json:"mode"`
	Tier      string             `json:"tier,omitempty"`
	Templates []catalog.Template `json:"templates"`
}

// workoutSubstitutionsGET lists replacement candidates for the exercise the
// session cursor is on. mode selects the filtering strategy, equipment
// narrows the all mode to one equipment type and q searches by name.
func (app *application) workoutSubstitutionsGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	wk, err := app.workoutService.Get(ctx, r.PathValue("id"))
	if err != nil {
		app.domainError(w, r, err)
		return
	}
	current := wk.Current()
	if current == nil {
		app.clientError(w, r, http.StatusConflict, "workout has no current exercise")
		return
	}

	mode, err := substitution.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var equipment *catalog.Equipment
	if raw := r.URL.Query().Get("equipment"); raw != "" {
		eq := catalog.Equipment(raw)
		if !validEquipment(eq) {
			app.clientError(w, r, http.StatusBadRequest, "unknown equipment")
			return
		}
		equipment = &eq
	}

	templates, tier, err := substitution.Browse(*current, mode, equipment, app.currentHealth(r))
	if err != nil {
		if errors.Is(err, substitution.ErrNoEligible) {
			app.writeJSON(w, r, http.StatusOK, substitutionsResponse{Mode: mode, Templates: []catalog.Template{}})
			return
		}
		app.domainError(w, r, err)
		return
	}

	templates = substitution.Search(templates, r.URL.Query().Get("q"))
	if templates == nil {
		templates = []catalog.Template{}
	}

	resp := substitutionsResponse{Mode: mode, Templates: templates}
	if tier != 0 {
		resp.Tier = tier.String()
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}

// currentHealth reads today's joint scores. Without a check-in the joints are
// assumed healthy so the smart cascade applies no flag filters.
func (app *application) currentHealth(r *http.Request) substitution.Health {
	today, err := app.checkinService.Today(r.Context())
	if err != nil {
		if !errors.Is(err, checkin.ErrNotFound) {
			app.logger.LogAttrs(r.Context(), slog.LevelWarn, "load today's check-in", slog.Any("error", err))
		}
		return substitution.Health{Knee: healthyScore, Shoulder: healthyScore}
	}
	return substitution.Health{Knee: today.Physical.Knee, Shoulder: today.Physical.Shoulder}
}

func validEquipment(eq catalog.Equipment) bool {
	for _, known := range catalog.AvailableEquipment() {
		if eq == known {
			return true
		}
	}
	return false
}
