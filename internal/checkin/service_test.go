package checkin_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/ptr"
	"github.com/stronghold-fit/stronghold/internal/sqlite"
	"github.com/stronghold-fit/stronghold/internal/testhelpers"
)

func newTestService(t *testing.T) *checkin.Service {
	t.Helper()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})
	return checkin.NewService(db, logger)
}

func sampleCheckIn(date time.Time) checkin.CheckIn {
	return checkin.CheckIn{
		Date: date,
		Physical: checkin.Physical{
			Knee:     7,
			Shoulder: 8,
			Energy:   6,
			Sleep:    7,
			Weight:   ptr.Ref(82.5),
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

func TestService_SubmitAndForDate(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := t.Context()
	date := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	submitted, err := svc.Submit(ctx, sampleCheckIn(date))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if submitted.ID == "" {
		t.Fatal("submit did not assign an ID")
	}

	got, err := svc.ForDate(ctx, date)
	if err != nil {
		t.Fatalf("get for date: %v", err)
	}
	if got.ID != submitted.ID {
		t.Errorf("got ID %q, want %q", got.ID, submitted.ID)
	}
	if diff := cmp.Diff(submitted.Physical, got.Physical); diff != "" {
		t.Errorf("physical mismatch (-want +got):\n%s", diff)
	}
	if got.Mental.State != checkin.MentalClear {
		t.Errorf("got mental state %q, want clear", got.Mental.State)
	}
}

func TestService_SubmitReplacesSameDay(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := t.Context()
	date := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)

	first := sampleCheckIn(date)
	if _, err := svc.Submit(ctx, first); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	second := sampleCheckIn(date)
	second.Mental.State = checkin.MentalAnxious
	second.Mental.Stress = 8
	submitted, err := svc.Submit(ctx, second)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	got, err := svc.ForDate(ctx, date)
	if err != nil {
		t.Fatalf("get for date: %v", err)
	}
	if got.ID != submitted.ID {
		t.Errorf("got ID %q, want the resubmission's %q", got.ID, submitted.ID)
	}
	if got.Mental.State != checkin.MentalAnxious {
		t.Errorf("got mental state %q, want anxious", got.Mental.State)
	}
	if got.Mental.Stress != 8 {
		t.Errorf("got stress %d, want 8", got.Mental.Stress)
	}

	recent, err := svc.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("got %d check-ins, want 1", len(recent))
	}
}

func TestService_RecentNewestFirst(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := t.Context()

	for day := 1; day <= 3; day++ {
		date := time.Date(2026, 3, day, 8, 0, 0, 0, time.UTC)
		if _, err := svc.Submit(ctx, sampleCheckIn(date)); err != nil {
			t.Fatalf("submit day %d: %v", day, err)
		}
	}

	recent, err := svc.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d check-ins, want 2", len(recent))
	}
	if got := recent[0].Date.Format(checkin.DateFormat); got != "2026-03-03" {
		t.Errorf("got newest date %s, want 2026-03-03", got)
	}
	if got := recent[1].Date.Format(checkin.DateFormat); got != "2026-03-02" {
		t.Errorf("got second date %s, want 2026-03-02", got)
	}
}

func TestService_ForDateNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.ForDate(t.Context(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, checkin.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCheckIn_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*checkin.CheckIn)
		wantErr bool
	}{
		{name: "valid", mutate: func(*checkin.CheckIn) {}},
		{name: "knee out of range", mutate: func(c *checkin.CheckIn) { c.Physical.Knee = 11 }, wantErr: true},
		{name: "stress too low", mutate: func(c *checkin.CheckIn) { c.Mental.Stress = 0 }, wantErr: true},
		{name: "unknown mental state", mutate: func(c *checkin.CheckIn) { c.Mental.State = "chaotic" }, wantErr: true},
		{name: "unknown emotion", mutate: func(c *checkin.CheckIn) { c.Emotional.Primary = "grumpy" }, wantErr: true},
		{name: "negative weight", mutate: func(c *checkin.CheckIn) { c.Physical.Weight = ptr.Ref(-1.0) }, wantErr: true},
		{name: "no weight", mutate: func(c *checkin.CheckIn) { c.Physical.Weight = nil }},
		{
			name:   "secondary emotion valid",
			mutate: func(c *checkin.CheckIn) { c.Emotional.Secondary = checkin.EmotionJoyful },
		},
		{
			name:    "secondary emotion invalid",
			mutate:  func(c *checkin.CheckIn) { c.Emotional.Secondary = "meh" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := sampleCheckIn(time.Now())
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
