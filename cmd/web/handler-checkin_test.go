package main

import (
	"net/http"
	"testing"

	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/e2etest"
	"github.com/stronghold-fit/stronghold/internal/ptr"
	"github.com/stronghold-fit/stronghold/internal/testhelpers"
)

// testCheckIn is a valid morning check-in used across handler tests.
func testCheckIn() checkin.CheckIn {
	return checkin.CheckIn{
		Physical: checkin.Physical{
			Knee:     8,
			Shoulder: 8,
			Energy:   7,
			Sleep:    7,
			Weight:   ptr.Ref(81.5),
		},
		Mental: checkin.Mental{
			State:   checkin.MentalClear,
			Stress:  3,
			Clarity: 8,
		},
		Emotional: checkin.Emotional{
			Primary:   checkin.EmotionPeaceful,
			Intensity: 5,
		},
	}
}

func Test_application_checkin(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("Requires authentication", func(t *testing.T) {
		if err := client.GetJSON(ctx, "/api/checkins/today", http.StatusUnauthorized, nil); err != nil {
			t.Errorf("Expected 401 before login: %v", err)
		}
	})

	if _, err = client.Login(ctx, testPasscode); err != nil {
		t.Fatalf("Failed to login: %v", err)
	}

	t.Run("No check-in yet", func(t *testing.T) {
		if err := client.GetJSON(ctx, "/api/checkins/today", http.StatusNotFound, nil); err != nil {
			t.Errorf("Expected 404 before any check-in: %v", err)
		}
	})

	t.Run("Rejects out-of-range scores", func(t *testing.T) {
		bad := testCheckIn()
		bad.Mental.Stress = 11
		err := client.DecodeJSON(ctx, "/api/checkins", bad, http.StatusUnprocessableEntity, nil)
		if err != nil {
			t.Errorf("Expected 422 for invalid check-in: %v", err)
		}
	})

	var saved checkin.CheckIn
	t.Run("Submits a check-in", func(t *testing.T) {
		err := client.DecodeJSON(ctx, "/api/checkins", testCheckIn(), http.StatusCreated, &saved)
		if err != nil {
			t.Fatalf("Failed to submit check-in: %v", err)
		}
		if saved.ID == "" {
			t.Error("Expected the saved check-in to have an ID")
		}
		if saved.Mental.State != checkin.MentalClear {
			t.Errorf("Expected mental state %q, got %q", checkin.MentalClear, saved.Mental.State)
		}
	})

	t.Run("Today returns the submitted check-in", func(t *testing.T) {
		var today checkin.CheckIn
		if err := client.GetJSON(ctx, "/api/checkins/today", http.StatusOK, &today); err != nil {
			t.Fatalf("Failed to get today's check-in: %v", err)
		}
		if today.ID != saved.ID {
			t.Errorf("Expected check-in %q, got %q", saved.ID, today.ID)
		}
	})

	t.Run("Resubmission replaces the day's check-in", func(t *testing.T) {
		again := testCheckIn()
		again.Mental.Stress = 5
		var replaced checkin.CheckIn
		err := client.DecodeJSON(ctx, "/api/checkins", again, http.StatusCreated, &replaced)
		if err != nil {
			t.Fatalf("Failed to resubmit check-in: %v", err)
		}

		var recent []checkin.CheckIn
		if err := client.GetJSON(ctx, "/api/checkins/recent", http.StatusOK, &recent); err != nil {
			t.Fatalf("Failed to get recent check-ins: %v", err)
		}
		if len(recent) != 1 {
			t.Fatalf("Expected 1 recent check-in, got %d", len(recent))
		}
		if recent[0].Mental.Stress != 5 {
			t.Errorf("Expected the replacement's stress 5, got %d", recent[0].Mental.Stress)
		}

		var today checkin.CheckIn
		if err := client.GetJSON(ctx, "/api/checkins/today", http.StatusOK, &today); err != nil {
			t.Fatalf("Failed to get today's check-in: %v", err)
		}
		if today.ID != replaced.ID {
			t.Errorf("Expected the stored ID %q to match the resubmission, got %q", replaced.ID, today.ID)
		}
	})

	t.Run("Recent rejects a bad count", func(t *testing.T) {
		if err := client.GetJSON(ctx, "/api/checkins/recent?n=nope", http.StatusBadRequest, nil); err != nil {
			t.Errorf("Expected 400 for a bad count: %v", err)
		}
	})
}
