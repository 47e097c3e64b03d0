package main

import (
	"net/http"
	"testing"

	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/e2etest"
	"github.com/stronghold-fit/stronghold/internal/testhelpers"
	"github.com/stronghold-fit/stronghold/internal/workout"
)

func Test_application_dataClear(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("Requires authentication", func(t *testing.T) {
		if err := client.Delete(ctx, "/api/data", http.StatusUnauthorized); err != nil {
			t.Errorf("Expected 401 before login: %v", err)
		}
	})

	if _, err = client.Login(ctx, testPasscode); err != nil {
		t.Fatalf("Failed to login: %v", err)
	}

	// seedDay submits a check-in and drafts a workout for today.
	seedDay := func(t *testing.T) {
		t.Helper()
		if err := client.DecodeJSON(ctx, "/api/checkins", testCheckIn(), http.StatusCreated, nil); err != nil {
			t.Fatalf("Failed to submit check-in: %v", err)
		}
		var wk workout.Workout
		if err := client.DecodeJSON(ctx, "/api/workouts/draft", nil, http.StatusCreated, &wk); err != nil {
			t.Fatalf("Failed to draft workout: %v", err)
		}
	}

	t.Run("Clearing an empty store succeeds", func(t *testing.T) {
		if err := client.Delete(ctx, "/api/data/today", http.StatusNoContent); err != nil {
			t.Errorf("Expected clearing nothing to succeed: %v", err)
		}
	})

	t.Run("Clears today's data", func(t *testing.T) {
		seedDay(t)
		if err := client.Delete(ctx, "/api/data/today", http.StatusNoContent); err != nil {
			t.Fatalf("Failed to clear today: %v", err)
		}
		if err := client.GetJSON(ctx, "/api/checkins/today", http.StatusNotFound, nil); err != nil {
			t.Errorf("Expected today's check-in gone: %v", err)
		}
		if err := client.GetJSON(ctx, "/api/workouts/today", http.StatusNotFound, nil); err != nil {
			t.Errorf("Expected today's workout gone: %v", err)
		}
	})

	t.Run("Clears everything", func(t *testing.T) {
		seedDay(t)
		if err := client.Delete(ctx, "/api/data", http.StatusNoContent); err != nil {
			t.Fatalf("Failed to clear all data: %v", err)
		}
		if err := client.GetJSON(ctx, "/api/checkins/today", http.StatusNotFound, nil); err != nil {
			t.Errorf("Expected check-ins gone: %v", err)
		}
		var recent []checkin.CheckIn
		if err := client.GetJSON(ctx, "/api/checkins/recent", http.StatusOK, &recent); err != nil {
			t.Fatalf("Failed to list recent check-ins: %v", err)
		}
		if len(recent) != 0 {
			t.Errorf("Expected no recent check-ins, got %d", len(recent))
		}
		if err := client.GetJSON(ctx, "/api/workouts/today", http.StatusNotFound, nil); err != nil {
			t.Errorf("Expected workouts gone: %v", err)
		}
	})
}
