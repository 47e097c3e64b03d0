// Package workout holds the workout aggregate, the AI drafting pipeline and
// the interactive session state machine.
package workout

import (
	"errors"
	"time"

	"github.com/stronghold-fit/stronghold/internal/catalog"
	"github.com/stronghold-fit/stronghold/internal/checkin"
)

var (
	// ErrNotFound is returned when no workout matches the lookup.
	ErrNotFound = errors.New("workout not found")
	// ErrConflict is returned when an update carries a stale version or an
	// operation is not legal in the workout's current state.
	ErrConflict = errors.New("workout conflict")
	// ErrParse is returned when an AI draft cannot be turned into a workout.
	ErrParse = errors.New("unparseable workout draft")
)

// Type classifies a workout by its focus.
type Type string

const (
	TypeUpperBody Type = "upper_body"
	TypeLowerBody Type = "lower_body"
	TypeFullBody  Type = "full_body"
	TypeCardio    Type = "cardio"
	TypeRecovery  Type = "recovery"
)

// ValidType reports whether t is a known workout type.
func ValidType(t Type) bool {
	switch t {
	case TypeUpperBody, TypeLowerBody, TypeFullBody, TypeCardio, TypeRecovery:
		return true
	}
	return false
}

// Status tracks a workout through its lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// SetDifficulty is the athlete's rating of a completed set.
type SetDifficulty string

const (
	SetEasy SetDifficulty = "easy"
	SetGood SetDifficulty = "good"
	SetHard SetDifficulty = "hard"
	SetPain SetDifficulty = "pain"
)

// DifficultyScore maps a set rating onto a 1-4 scale for analytics.
func DifficultyScore(d SetDifficulty) (int, bool) {
	switch d {
	case SetEasy:
		return 1, true
	case SetGood:
		return 2, true
	case SetHard:
		return 3, true
	case SetPain:
		return 4, true
	}
	return 0, false
}

// Set is one planned set of an exercise, with the actuals filled in as the
// athlete works through it.
type Set struct {
	Number       int           `json:"number"`
	TargetReps   int           `json:"targetReps"`
	TargetWeight *float64      `json:"targetWeight,omitempty"`
	RestSeconds  int           `json:"restSeconds"`
	Completed    bool          `json:"completed"`
	Skipped      bool          `json:"skipped,omitempty"`
	ActualReps   *int          `json:"actualReps,omitempty"`
	ActualWeight *float64      `json:"actualWeight,omitempty"`
	Difficulty   SetDifficulty `json:"difficulty,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	CompletedAt  *time.Time    `json:"completedAt,omitempty"`
}

// Exercise is one movement instance inside a workout. InstanceID is unique
// within the workout; TemplateID refers back to the catalog.
type Exercise struct {
	InstanceID      string            `json:"id"`
	TemplateID      string            `json:"templateId,omitempty"`
	Name            string            `json:"name"`
	Equipment       catalog.Equipment `json:"equipment"`
	Phase           catalog.Phase     `json:"phase"`
	Sets            []Set             `json:"sets"`
	DurationMinutes int               `json:"durationMinutes,omitempty"`
	FormCues        []string          `json:"formCues,omitempty"`
	Modifications   string            `json:"modifications,omitempty"`
	Instructions    string            `json:"instructions,omitempty"`
	TargetMuscles   []string          `json:"targetMuscles,omitempty"`
	SubstitutedFrom string            `json:"substitutedFrom,omitempty"`
	Skipped         bool              `json:"skipped,omitempty"`
	SkipReason      string            `json:"skipReason,omitempty"`
}

// Timed reports whether the exercise is duration-based rather than rep-based.
func (e Exercise) Timed() bool {
	return e.DurationMinutes > 0
}

// Phases in execution order. CurrentPhase indexes into this.
const (
	PhaseWarmup = iota
	PhaseStrength
	PhaseCooldown
	phaseCount
)

// Workout is the aggregate root. Exercises are grouped into the three
// execution phases; the cursor fields track where the athlete is in an active
// session. Version implements optimistic concurrency: updates fail with
// ErrConflict when the caller's version is stale.
type Workout struct {
	ID                string                    `json:"id"`
	Date              time.Time                 `json:"date"`
	Type              Type                      `json:"type"`
	Status            Status                    `json:"status"`
	EstimatedDuration int                       `json:"estimatedDuration"`
	ActualDuration    int                       `json:"actualDuration,omitempty"`
	Reasoning         string                    `json:"reasoning"`
	CoachingNotes     string                    `json:"coachingNotes,omitempty"`
	Warmup            []Exercise                `json:"warmup"`
	Strength          []Exercise                `json:"strength"`
	Cooldown          []Exercise                `json:"cooldown"`
	CurrentPhase      int                       `json:"currentPhase"`
	CurrentExercise   int                       `json:"currentExercise"`
	CurrentSet        int                       `json:"currentSet"`
	RestingUntil      *time.Time                `json:"restingUntil,omitempty"`
	PostCheck         *checkin.PostWorkoutCheck `json:"postCheck,omitempty"`
	Version           int                       `json:"version"`
	CreatedAt         time.Time                 `json:"createdAt"`
	CompletedAt       *time.Time                `json:"completedAt,omitempty"`
}

// phases returns the exercise slices in execution order. The returned slices
// alias the workout's own.
func (w *Workout) phases() [][]Exercise {
	return [][]Exercise{w.Warmup, w.Strength, w.Cooldown}
}

// Exercises returns every exercise in execution order.
func (w *Workout) Exercises() []Exercise {
	var out []Exercise
	for _, phase := range w.phases() {
		out = append(out, phase...)
	}
	return out
}

// Current returns a pointer to the exercise under the cursor, or nil when the
// workout has no remaining exercises.
func (w *Workout) Current() *Exercise {
	switch w.CurrentPhase {
	case PhaseWarmup:
		if w.CurrentExercise < len(w.Warmup) {
			return &w.Warmup[w.CurrentExercise]
		}
	case PhaseStrength:
		if w.CurrentExercise < len(w.Strength) {
			return &w.Strength[w.CurrentExercise]
		}
	case PhaseCooldown:
		if w.CurrentExercise < len(w.Cooldown) {
			return &w.Cooldown[w.CurrentExercise]
		}
	}
	return nil
}

// SessionState describes where an active session stands.
type SessionState string

const (
	StateAtExercise SessionState = "at_exercise"
	StateResting    SessionState = "resting"
	StateFinished   SessionState = "finished"
)

// State derives the session state from the workout fields. A session whose
// cursor has moved past the last exercise is finished even before the
// post-workout check lands.
func (w *Workout) State() SessionState {
	if w.Status == StatusCompleted || w.Exhausted() {
		return StateFinished
	}
	if w.RestingUntil != nil {
		return StateResting
	}
	return StateAtExercise
}
