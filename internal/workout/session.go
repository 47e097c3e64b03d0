package workout

import (
	"fmt"
	"time"

	"github.com/stronghold-fit/stronghold/internal/checkin"
)

// SetResult carries the actuals the athlete reports for one completed set.
type SetResult struct {
	Reps       *int          `json:"reps,omitempty"`
	Weight     *float64      `json:"weight,omitempty"`
	Difficulty SetDifficulty `json:"difficulty,omitempty"`
	Notes      string        `json:"notes,omitempty"`
}

// Start moves a draft workout into the active state.
func (w *Workout) Start() error {
	if w.Status != StatusDraft {
		return fmt.Errorf("%w: cannot start workout in status %q", ErrConflict, w.Status)
	}
	if w.Current() == nil && !w.advance() {
		return fmt.Errorf("%w: workout has no exercises", ErrConflict)
	}
	w.Status = StatusActive
	return nil
}

// CompleteSet records the actuals for the set under the cursor. When more
// sets remain in the exercise the session enters the rest state (unless the
// set carries no rest), otherwise the cursor moves to the next exercise.
func (w *Workout) CompleteSet(result SetResult, now time.Time) error {
	current, err := w.currentForUpdate()
	if err != nil {
		return err
	}
	if result.Difficulty != "" {
		if _, ok := DifficultyScore(result.Difficulty); !ok {
			return fmt.Errorf("unknown set difficulty %q", result.Difficulty)
		}
	}

	set := &current.Sets[w.CurrentSet]
	set.Completed = true
	set.ActualReps = result.Reps
	set.ActualWeight = result.Weight
	set.Difficulty = result.Difficulty
	set.Notes = result.Notes
	completedAt := now
	set.CompletedAt = &completedAt

	if w.CurrentSet+1 < len(current.Sets) {
		if set.RestSeconds > 0 {
			restingUntil := now.Add(time.Duration(set.RestSeconds) * time.Second)
			w.RestingUntil = &restingUntil
		} else {
			w.CurrentSet++
		}
		return nil
	}
	w.nextExercise()
	return nil
}

// SkipSet advances past the set under the cursor without recording data and
// without a rest period.
func (w *Workout) SkipSet() error {
	current, err := w.currentForUpdate()
	if err != nil {
		return err
	}
	current.Sets[w.CurrentSet].Skipped = true
	if w.CurrentSet+1 < len(current.Sets) {
		w.CurrentSet++
		return nil
	}
	w.nextExercise()
	return nil
}

// SkipExercise marks the remaining sets of the current exercise skipped and
// moves on.
func (w *Workout) SkipExercise(reason string) error {
	current, err := w.currentForUpdate()
	if err != nil {
		return err
	}
	current.Skipped = true
	current.SkipReason = reason
	for i := w.CurrentSet; i < len(current.Sets); i++ {
		if !current.Sets[i].Completed {
			current.Sets[i].Skipped = true
		}
	}
	w.nextExercise()
	return nil
}

// AcknowledgeRest ends the rest period, whether the timer elapsed or the
// athlete skipped it, and puts the cursor on the next set.
func (w *Workout) AcknowledgeRest() error {
	if w.Status != StatusActive {
		return fmt.Errorf("%w: workout is not active", ErrConflict)
	}
	if w.RestingUntil == nil {
		return fmt.Errorf("%w: workout is not resting", ErrConflict)
	}
	w.RestingUntil = nil
	w.CurrentSet++
	return nil
}

// Substitute replaces the exercise under the cursor with the replacement,
// resetting the set index and cancelling any rest.
func (w *Workout) Substitute(replacement Exercise) error {
	if w.Status == StatusCompleted {
		return fmt.Errorf("%w: workout is completed", ErrConflict)
	}
	current := w.Current()
	if current == nil {
		return fmt.Errorf("%w: no exercise to substitute", ErrConflict)
	}
	replacement.SubstitutedFrom = current.TemplateID
	if replacement.SubstitutedFrom == "" {
		// Ad-hoc model exercises have no catalog link, keep the name.
		replacement.SubstitutedFrom = current.Name
	}
	*current = replacement
	w.CurrentSet = 0
	w.RestingUntil = nil
	return nil
}

// Finish completes the workout and stores the post-workout check. Finishing
// an already completed workout is a conflict.
func (w *Workout) Finish(post checkin.PostWorkoutCheck, now time.Time) error {
	if w.Status == StatusCompleted {
		return fmt.Errorf("%w: workout already completed", ErrConflict)
	}
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validate post-workout check: %w", err)
	}
	if post.CompletedAt.IsZero() {
		post.CompletedAt = now
	}
	w.Status = StatusCompleted
	completedAt := now
	w.CompletedAt = &completedAt
	w.ActualDuration = int(now.Sub(w.CreatedAt).Minutes())
	w.PostCheck = &post
	w.RestingUntil = nil
	return nil
}

// currentForUpdate validates that a set-level transition is legal right now.
func (w *Workout) currentForUpdate() (*Exercise, error) {
	if w.Status != StatusActive {
		return nil, fmt.Errorf("%w: workout is not active", ErrConflict)
	}
	if w.RestingUntil != nil {
		return nil, fmt.Errorf("%w: workout is resting", ErrConflict)
	}
	current := w.Current()
	if current == nil {
		return nil, fmt.Errorf("%w: no exercise under the cursor", ErrConflict)
	}
	if w.CurrentSet >= len(current.Sets) {
		return nil, fmt.Errorf("%w: set cursor out of range", ErrConflict)
	}
	return current, nil
}

// nextExercise moves the cursor to the next exercise, crossing phase
// boundaries and clearing the rest state.
func (w *Workout) nextExercise() {
	w.CurrentExercise++
	w.CurrentSet = 0
	w.RestingUntil = nil
	w.advance()
}

// advance normalizes the cursor onto the next existing exercise, skipping
// empty phases. It reports whether an exercise remains.
func (w *Workout) advance() bool {
	for w.CurrentPhase < phaseCount {
		if w.Current() != nil {
			return true
		}
		w.CurrentPhase++
		w.CurrentExercise = 0
		w.CurrentSet = 0
	}
	return false
}

// Exhausted reports whether the cursor has moved past the last exercise.
func (w *Workout) Exhausted() bool {
	return w.Current() == nil && w.CurrentPhase >= phaseCount
}
