package workout

import (
	"time"

	"github.com/google/uuid"
	"github.com/stronghold-fit/stronghold/internal/catalog"
)

// FallbackWorkout is the canned safe session served when drafting fails. It
// sticks to the rowing machine and bands so it is safe on any check-in.
func FallbackWorkout(date time.Time) Workout {
	return Workout{
		ID:                uuid.NewString(),
		Date:              date,
		Type:              TypeUpperBody,
		Status:            StatusDraft,
		EstimatedDuration: 30,
		Reasoning:         "Basic upper body workout (AI temporarily unavailable)",
		CoachingNotes:     "Safe basic workout. We'll get the AI working soon!",
		Warmup: []Exercise{
			{
				InstanceID:      uuid.NewString(),
				TemplateID:      "easy_rowing",
				Name:            "Easy Rowing",
				Equipment:       catalog.EquipmentRowingMachine,
				Phase:           catalog.PhaseWarmup,
				DurationMinutes: 5,
				FormCues:        []string{"Easy pace", "Focus on form"},
				Sets: []Set{
					{Number: 1, TargetReps: 0, RestSeconds: 0},
				},
			},
		},
		Strength: []Exercise{
			fallbackBandExercise("band_chest_press", "Band Chest Press",
				[]string{"Control the movement", "Full range of motion"}),
			fallbackBandExercise("band_row", "Band Row",
				[]string{"Pull elbows back", "Squeeze shoulder blades"}),
		},
		Version:   1,
		CreatedAt: date,
	}
}

func fallbackBandExercise(templateID, name string, cues []string) Exercise {
	sets := make([]Set, 3)
	for i := range sets {
		sets[i] = Set{Number: i + 1, TargetReps: 12, RestSeconds: 60}
	}
	return Exercise{
		InstanceID: uuid.NewString(),
		TemplateID: templateID,
		Name:       name,
		Equipment:  catalog.EquipmentResistanceBands,
		Phase:      catalog.PhaseStrength,
		Sets:       sets,
		FormCues:   cues,
	}
}
