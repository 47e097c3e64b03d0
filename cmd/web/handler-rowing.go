package main

import (
	"net/http"
	"time"

	"github.com/stronghold-fit/stronghold/internal/rowing"
)

// telemetryRequest carries one raw FTMS Rower Data frame from the Bluetooth
// bridge. The frame is the characteristic value as read off the wire,
// base64-encoded by encoding/json.
type telemetryRequest struct {
	Frame []byte `json:"frame"`
}

func (app *application) rowingTelemetryPOST(w http.ResponseWriter, r *http.Request) {
	var req telemetryRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	if len(req.Frame) == 0 {
		app.clientError(w, r, http.StatusBadRequest, "empty frame")
		return
	}

	snap, err := rowing.ParseRowerData(req.Frame, time.Now())
	if err != nil {
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	app.rowerStore.Record(snap)

	app.writeJSON(w, r, http.StatusAccepted, snap)
}

func (app *application) rowingLatestGET(w http.ResponseWriter, r *http.Request) {
	snap, ok := app.rowerStore.Latest()
	if !ok {
		app.clientError(w, r, http.StatusNotFound, "no rowing telemetry recorded")
		return
	}

	resp := struct {
		rowing.Snapshot
		Fresh bool `json:"fresh"`
	}{
		Snapshot: snap,
		Fresh:    time.Since(snap.Timestamp) <= rowing.FreshWindow,
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}
