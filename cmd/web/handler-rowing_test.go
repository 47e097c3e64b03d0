package main

import (
	"net/http"
	"testing"

	"github.com/stronghold-fit/stronghold/internal/e2etest"
	"github.com/stronghold-fit/stronghold/internal/rowing"
	"github.com/stronghold-fit/stronghold/internal/testhelpers"
)

func Test_application_rowing(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()
	if _, err = client.Login(ctx, testPasscode); err != nil {
		t.Fatalf("Failed to login: %v", err)
	}

	t.Run("No telemetry yet", func(t *testing.T) {
		if err := client.GetJSON(ctx, "/api/rowing/latest", http.StatusNotFound, nil); err != nil {
			t.Errorf("Expected 404 before any telemetry: %v", err)
		}
	})

	t.Run("Rejects an empty frame", func(t *testing.T) {
		body := map[string]any{"frame": []byte{}}
		if err := client.DecodeJSON(ctx, "/api/rowing/telemetry", body, http.StatusBadRequest, nil); err != nil {
			t.Errorf("Expected 400 for an empty frame: %v", err)
		}
	})

	t.Run("Rejects a truncated frame", func(t *testing.T) {
		body := map[string]any{"frame": []byte{0x00}}
		err := client.DecodeJSON(ctx, "/api/rowing/telemetry", body, http.StatusUnprocessableEntity, nil)
		if err != nil {
			t.Errorf("Expected 422 for a truncated frame: %v", err)
		}
	})

	t.Run("Records a rower data frame", func(t *testing.T) {
		// Flags select total distance and instantaneous pace on top of the
		// stroke fields: 24.0 spm, 120 strokes, 1000 m, 2:00/500m.
		frame := []byte{
			0x0C, 0x00, // flags
			0x30,       // stroke rate, half-unit resolution
			0x78, 0x00, // stroke count
			0xE8, 0x03, 0x00, // distance
			0x78, 0x00, // pace
		}
		var snap rowing.Snapshot
		body := map[string]any{"frame": frame}
		if err := client.DecodeJSON(ctx, "/api/rowing/telemetry", body, http.StatusAccepted, &snap); err != nil {
			t.Fatalf("Failed to post telemetry: %v", err)
		}
		if snap.StrokeRate != 24 {
			t.Errorf("Expected stroke rate 24, got %v", snap.StrokeRate)
		}
		if snap.Distance != 1000 {
			t.Errorf("Expected distance 1000, got %d", snap.Distance)
		}
		if snap.Pace != 120 {
			t.Errorf("Expected pace 120, got %d", snap.Pace)
		}
	})

	t.Run("Latest returns the fresh snapshot", func(t *testing.T) {
		var latest struct {
			rowing.Snapshot
			Fresh bool `json:"fresh"`
		}
		if err := client.GetJSON(ctx, "/api/rowing/latest", http.StatusOK, &latest); err != nil {
			t.Fatalf("Failed to get latest telemetry: %v", err)
		}
		if latest.StrokeCount != 120 {
			t.Errorf("Expected stroke count 120, got %d", latest.StrokeCount)
		}
		if !latest.Fresh {
			t.Error("Expected the snapshot to be fresh")
		}
	})
}
