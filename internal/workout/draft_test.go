package workout_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stronghold-fit/stronghold/internal/catalog"
	"github.com/stronghold-fit/stronghold/internal/workout"
)

const validDraft = `{
  "type": "upper_body",
  "estimatedDuration": 35,
  "reasoning": "Shoulder feels good, build pressing volume.",
  "warmup": {
    "exercises": [
      {
        "name": "Easy Rowing",
        "equipment": "rowing_machine",
        "duration": 5,
        "reps": null,
        "sets": 1,
        "restSeconds": 0,
        "formCues": ["Easy pace"],
        "instructions": "Row gently for five minutes."
      }
    ]
  },
  "strength": {
    "exercises": [
      {
        "name": "Dual Cable Chest Press",
        "equipment": "cables",
        "sets": 3,
        "reps": 12,
        "targetWeight": 25,
        "restSeconds": 90,
        "formCues": ["Press forward and together"],
        "modifications": ""
      }
    ]
  },
  "cooldown": {
    "exercises": [
      {
        "name": "Doorway Chest Stretch",
        "duration": 2,
        "instructions": "Hold 30-60 seconds each side."
      }
    ]
  },
  "coachingNotes": "Strong day ahead."
}`

func TestParseDraft_Valid(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	w, err := workout.ParseDraft(validDraft, date)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if w.Type != workout.TypeUpperBody {
		t.Errorf("got type %q, want upper_body", w.Type)
	}
	if w.Status != workout.StatusDraft {
		t.Errorf("got status %q, want draft", w.Status)
	}
	if w.EstimatedDuration != 35 {
		t.Errorf("got estimated duration %d, want 35", w.EstimatedDuration)
	}
	if len(w.Warmup) != 1 || len(w.Strength) != 1 || len(w.Cooldown) != 1 {
		t.Fatalf("got %d/%d/%d exercises", len(w.Warmup), len(w.Strength), len(w.Cooldown))
	}

	rowingEx := w.Warmup[0]
	if rowingEx.DurationMinutes != 5 {
		t.Errorf("got duration %d, want 5", rowingEx.DurationMinutes)
	}
	if rowingEx.TemplateID != "easy_rowing" {
		t.Errorf("catalog link missing: template ID %q", rowingEx.TemplateID)
	}

	press := w.Strength[0]
	if len(press.Sets) != 3 {
		t.Fatalf("got %d sets, want 3", len(press.Sets))
	}
	if press.Sets[2].Number != 3 || press.Sets[2].TargetReps != 12 || press.Sets[2].RestSeconds != 90 {
		t.Errorf("set defaults wrong: %+v", press.Sets[2])
	}
	if press.Sets[0].TargetWeight == nil || *press.Sets[0].TargetWeight != 25 {
		t.Errorf("got target weight %v, want 25", press.Sets[0].TargetWeight)
	}

	stretch := w.Cooldown[0]
	if stretch.Equipment != catalog.EquipmentBodyweight {
		t.Errorf("got equipment %q, want bodyweight default", stretch.Equipment)
	}
	if len(stretch.Sets) != 1 || stretch.Sets[0].RestSeconds != 60 {
		t.Errorf("cooldown defaults wrong: %+v", stretch.Sets)
	}
}

func TestParseDraft_StripsCodeFences(t *testing.T) {
	t.Parallel()

	fenced := "```json\n" + validDraft + "\n```"
	if _, err := workout.ParseDraft(fenced, time.Now()); err != nil {
		t.Fatalf("parse fenced draft: %v", err)
	}
}

func TestParseDraft_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", "I suggest a nice upper body day!"},
		{"unknown field", `{"type":"cardio","estimatedDuration":30,"reasoning":"r","surprise":1,
			"warmup":{"exercises":[]},"strength":{"exercises":[{"name":"Band Row","equipment":"resistance_bands","sets":3,"reps":12,"targetWeight":null,"restSeconds":60,"formCues":[],"modifications":""}]},"cooldown":{"exercises":[]},"coachingNotes":""}`},
		{"bad type enum", `{"type":"arms_only","estimatedDuration":30,"reasoning":"r",
			"warmup":{"exercises":[]},"strength":{"exercises":[{"name":"Band Row","equipment":"resistance_bands","sets":3,"reps":12,"targetWeight":null,"restSeconds":60,"formCues":[],"modifications":""}]},"cooldown":{"exercises":[]},"coachingNotes":""}`},
		{"bad equipment enum", `{"type":"cardio","estimatedDuration":30,"reasoning":"r",
			"warmup":{"exercises":[]},"strength":{"exercises":[{"name":"Band Row","equipment":"kettlebell","sets":3,"reps":12,"targetWeight":null,"restSeconds":60,"formCues":[],"modifications":""}]},"cooldown":{"exercises":[]},"coachingNotes":""}`},
		{"negative reps", `{"type":"cardio","estimatedDuration":30,"reasoning":"r",
			"warmup":{"exercises":[]},"strength":{"exercises":[{"name":"Band Row","equipment":"resistance_bands","sets":3,"reps":-1,"targetWeight":null,"restSeconds":60,"formCues":[],"modifications":""}]},"cooldown":{"exercises":[]},"coachingNotes":""}`},
		{"zero sets", `{"type":"cardio","estimatedDuration":30,"reasoning":"r",
			"warmup":{"exercises":[]},"strength":{"exercises":[{"name":"Band Row","equipment":"resistance_bands","sets":0,"reps":12,"targetWeight":null,"restSeconds":60,"formCues":[],"modifications":""}]},"cooldown":{"exercises":[]},"coachingNotes":""}`},
		{"missing name", `{"type":"cardio","estimatedDuration":30,"reasoning":"r",
			"warmup":{"exercises":[]},"strength":{"exercises":[{"name":"","equipment":"resistance_bands","sets":3,"reps":12,"targetWeight":null,"restSeconds":60,"formCues":[],"modifications":""}]},"cooldown":{"exercises":[]},"coachingNotes":""}`},
		{"no duration", `{"type":"cardio","estimatedDuration":0,"reasoning":"r",
			"warmup":{"exercises":[]},"strength":{"exercises":[{"name":"Band Row","equipment":"resistance_bands","sets":3,"reps":12,"targetWeight":null,"restSeconds":60,"formCues":[],"modifications":""}]},"cooldown":{"exercises":[]},"coachingNotes":""}`},
		{"empty draft", `{"type":"cardio","estimatedDuration":30,"reasoning":"r",
			"warmup":{"exercises":[]},"strength":{"exercises":[]},"cooldown":{"exercises":[]},"coachingNotes":""}`},
		{"trailing content", validDraft + ` {"another":"object"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := workout.ParseDraft(tt.raw, time.Now())
			if !errors.Is(err, workout.ErrParse) {
				t.Errorf("got %v, want ErrParse", err)
			}
		})
	}
}

func TestFallbackWorkout(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	w := workout.FallbackWorkout(date)

	if w.Type != workout.TypeUpperBody || w.EstimatedDuration != 30 {
		t.Errorf("got type %q duration %d", w.Type, w.EstimatedDuration)
	}
	if w.Reasoning != "Basic upper body workout (AI temporarily unavailable)" {
		t.Errorf("got reasoning %q", w.Reasoning)
	}
	if len(w.Warmup) != 1 || w.Warmup[0].Name != "Easy Rowing" || w.Warmup[0].DurationMinutes != 5 {
		t.Errorf("unexpected warmup: %+v", w.Warmup)
	}
	if len(w.Strength) != 2 {
		t.Fatalf("got %d strength exercises, want 2", len(w.Strength))
	}
	for _, e := range w.Strength {
		if len(e.Sets) != 3 || e.Sets[0].TargetReps != 12 || e.Sets[0].RestSeconds != 60 {
			t.Errorf("unexpected strength sets for %s: %+v", e.Name, e.Sets)
		}
	}
}
