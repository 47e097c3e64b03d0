package workout

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stronghold-fit/stronghold/internal/catalog"
)

// Documented defaults for fields the model may leave out. These are not
// error suppression: anything else malformed fails the parse.
const (
	defaultSets        = 1
	defaultRestSeconds = 60
)

type draftExercise struct {
	Name          string   `json:"name"`
	Equipment     string   `json:"equipment"`
	Sets          *int     `json:"sets"`
	Reps          *int     `json:"reps"`
	TargetWeight  *float64 `json:"targetWeight"`
	RestSeconds   *int     `json:"restSeconds"`
	Duration      *int     `json:"duration"`
	FormCues      []string `json:"formCues"`
	Modifications string   `json:"modifications"`
	Instructions  string   `json:"instructions"`
}

type draftPhase struct {
	Exercises []draftExercise `json:"exercises"`
}

type draftDoc struct {
	Type              string     `json:"type"`
	EstimatedDuration int        `json:"estimatedDuration"`
	Reasoning         string     `json:"reasoning"`
	Warmup            draftPhase `json:"warmup"`
	Strength          draftPhase `json:"strength"`
	Cooldown          draftPhase `json:"cooldown"`
	CoachingNotes     string     `json:"coachingNotes"`
}

// ParseDraft turns a raw model completion into a draft workout. Markdown
// code fences around the JSON are tolerated; everything else is parsed
// strictly. A failed parse returns an ErrParse-wrapped error and never a
// silently patched workout.
func ParseDraft(raw string, date time.Time) (Workout, error) {
	cleaned := stripFences(raw)

	decoder := json.NewDecoder(strings.NewReader(cleaned))
	decoder.DisallowUnknownFields()
	var doc draftDoc
	if err := decoder.Decode(&doc); err != nil {
		return Workout{}, fmt.Errorf("%w: decode JSON: %v", ErrParse, err)
	}
	if decoder.More() {
		return Workout{}, fmt.Errorf("%w: trailing content after JSON object", ErrParse)
	}

	if !ValidType(Type(doc.Type)) {
		return Workout{}, fmt.Errorf("%w: unknown workout type %q", ErrParse, doc.Type)
	}
	if doc.EstimatedDuration <= 0 {
		return Workout{}, fmt.Errorf("%w: estimated duration %d", ErrParse, doc.EstimatedDuration)
	}
	if doc.Reasoning == "" {
		return Workout{}, fmt.Errorf("%w: missing reasoning", ErrParse)
	}

	w := Workout{
		ID:                uuid.NewString(),
		Date:              date,
		Type:              Type(doc.Type),
		Status:            StatusDraft,
		EstimatedDuration: doc.EstimatedDuration,
		Reasoning:         doc.Reasoning,
		CoachingNotes:     doc.CoachingNotes,
		Version:           1,
		CreatedAt:         date,
	}

	var err error
	if w.Warmup, err = draftExercises(doc.Warmup.Exercises, catalog.PhaseWarmup); err != nil {
		return Workout{}, fmt.Errorf("%w: warmup: %v", ErrParse, err)
	}
	if w.Strength, err = draftExercises(doc.Strength.Exercises, catalog.PhaseStrength); err != nil {
		return Workout{}, fmt.Errorf("%w: strength: %v", ErrParse, err)
	}
	if w.Cooldown, err = draftExercises(doc.Cooldown.Exercises, catalog.PhaseCooldown); err != nil {
		return Workout{}, fmt.Errorf("%w: cooldown: %v", ErrParse, err)
	}

	if len(w.Warmup)+len(w.Strength)+len(w.Cooldown) == 0 {
		return Workout{}, fmt.Errorf("%w: draft has no exercises", ErrParse)
	}
	return w, nil
}

func draftExercises(entries []draftExercise, phase catalog.Phase) ([]Exercise, error) {
	var out []Exercise
	for i, entry := range entries {
		e, err := buildExercise(entry, phase)
		if err != nil {
			return nil, fmt.Errorf("exercise %d: %w", i+1, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func buildExercise(entry draftExercise, phase catalog.Phase) (Exercise, error) {
	if entry.Name == "" {
		return Exercise{}, fmt.Errorf("missing name")
	}

	equipment := catalog.Equipment(entry.Equipment)
	if entry.Equipment == "" {
		equipment = catalog.EquipmentBodyweight
	} else if !validEquipment(equipment) {
		return Exercise{}, fmt.Errorf("unknown equipment %q", entry.Equipment)
	}

	sets := defaultSets
	if entry.Sets != nil {
		if *entry.Sets < 1 {
			return Exercise{}, fmt.Errorf("sets %d", *entry.Sets)
		}
		sets = *entry.Sets
	}
	reps := 0
	if entry.Reps != nil {
		if *entry.Reps < 0 {
			return Exercise{}, fmt.Errorf("reps %d", *entry.Reps)
		}
		reps = *entry.Reps
	}
	rest := defaultRestSeconds
	if entry.RestSeconds != nil {
		if *entry.RestSeconds < 0 {
			return Exercise{}, fmt.Errorf("rest seconds %d", *entry.RestSeconds)
		}
		rest = *entry.RestSeconds
	}
	if entry.Duration != nil && *entry.Duration < 0 {
		return Exercise{}, fmt.Errorf("duration %d", *entry.Duration)
	}
	if entry.TargetWeight != nil && *entry.TargetWeight < 0 {
		return Exercise{}, fmt.Errorf("target weight %v", *entry.TargetWeight)
	}

	e := Exercise{
		InstanceID:    uuid.NewString(),
		Name:          entry.Name,
		Equipment:     equipment,
		Phase:         phase,
		FormCues:      entry.FormCues,
		Modifications: entry.Modifications,
		Instructions:  entry.Instructions,
	}
	if e.FormCues == nil {
		e.FormCues = []string{}
	}
	// Link back to the catalog when the model picked a known movement.
	if tmpl, ok := catalog.ByName(entry.Name); ok {
		e.TemplateID = tmpl.ID
		e.TargetMuscles = tmpl.TargetMuscles
	}

	e.Sets = make([]Set, sets)
	for i := range e.Sets {
		e.Sets[i] = Set{
			Number:       i + 1,
			TargetReps:   reps,
			TargetWeight: entry.TargetWeight,
			RestSeconds:  rest,
			Completed:    false,
		}
	}

	if entry.Duration != nil {
		e.DurationMinutes = *entry.Duration
	} else if reps == 0 {
		e.DurationMinutes = defaultTimedMinutes
	}
	return e, nil
}

const defaultTimedMinutes = 20

func validEquipment(e catalog.Equipment) bool {
	for _, known := range catalog.AvailableEquipment() {
		if e == known {
			return true
		}
	}
	return false
}

// stripFences removes markdown code fences around the model's JSON answer.
func stripFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
