package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stronghold-fit/stronghold/internal/catalog"
	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/rowing"
	"github.com/stronghold-fit/stronghold/internal/sqlite"
)

// Drafter produces the raw completion for a drafting prompt. Implemented by
// ai.Client.
type Drafter interface {
	DraftWorkout(ctx context.Context, system, prompt string) (string, error)
}

// Service handles the business logic for workouts and active sessions.
type Service struct {
	repo    *sqliteRepository
	logger  *slog.Logger
	drafter Drafter
	rower   *rowing.Store
	now     func() time.Time
}

// NewService creates a new workout service. The rowing store may be nil when
// no telemetry bridge is configured.
func NewService(db *sqlite.Database, logger *slog.Logger, drafter Drafter, rower *rowing.Store) *Service {
	return &Service{
		repo:    newSQLiteRepository(db, logger),
		logger:  logger,
		drafter: drafter,
		rower:   rower,
		now:     time.Now,
	}
}

// Draft asks the model for today's workout based on the check-in and stores
// the result. When the model call or the parse fails the canned fallback
// workout is stored instead, with the cause logged.
func (s *Service) Draft(ctx context.Context, today checkin.CheckIn, history []checkin.CheckIn) (Workout, error) {
	now := s.now()
	w, err := s.draftFromModel(ctx, today, history, now)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "workout drafting failed, using fallback",
			slog.String("error", err.Error()))
		w = FallbackWorkout(now)
	}

	if err := s.repo.create(ctx, w); err != nil {
		return Workout{}, fmt.Errorf("store drafted workout: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "workout drafted",
		slog.String("id", w.ID),
		slog.String("type", string(w.Type)),
		slog.Int("estimated_minutes", w.EstimatedDuration))
	return w, nil
}

func (s *Service) draftFromModel(ctx context.Context, today checkin.CheckIn, history []checkin.CheckIn, now time.Time) (Workout, error) {
	raw, err := s.drafter.DraftWorkout(ctx, SystemPrompt, BuildPrompt(today, history))
	if err != nil {
		return Workout{}, fmt.Errorf("model completion: %w", err)
	}
	w, err := ParseDraft(raw, now)
	if err != nil {
		return Workout{}, fmt.Errorf("parse draft: %w", err)
	}
	return w, nil
}

// Get retrieves one workout by ID.
func (s *Service) Get(ctx context.Context, id string) (Workout, error) {
	w, err := s.repo.getByID(ctx, id)
	if err != nil {
		return Workout{}, fmt.Errorf("get workout %s: %w", id, err)
	}
	return w, nil
}

// Today returns the most recent workout for today.
func (s *Service) Today(ctx context.Context) (Workout, error) {
	w, err := s.repo.latestForDate(ctx, s.now())
	if err != nil {
		return Workout{}, fmt.Errorf("get today's workout: %w", err)
	}
	return w, nil
}

// Completed returns every completed workout, oldest first.
func (s *Service) Completed(ctx context.Context) ([]Workout, error) {
	workouts, err := s.repo.listCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completed workouts: %w", err)
	}
	return workouts, nil
}

// Start begins the session for a drafted workout.
func (s *Service) Start(ctx context.Context, id string, version int) (Workout, error) {
	return s.transition(ctx, id, version, func(w *Workout) error {
		return w.Start()
	})
}

// CompleteSet records the actuals for the current set. Timed rowing sets
// with no reported actuals are prefilled from fresh telemetry.
func (s *Service) CompleteSet(ctx context.Context, id string, version int, result SetResult) (Workout, error) {
	return s.transition(ctx, id, version, func(w *Workout) error {
		s.prefillFromTelemetry(w, &result)
		return w.CompleteSet(result, s.now())
	})
}

// prefillFromTelemetry fills the result notes with the rower's own numbers
// when the athlete finishes a timed rowing piece without reporting anything.
func (s *Service) prefillFromTelemetry(w *Workout, result *SetResult) {
	if s.rower == nil || result.Notes != "" {
		return
	}
	current := w.Current()
	if current == nil || !current.Timed() || current.Equipment != catalog.EquipmentRowingMachine {
		return
	}
	snap, ok := s.rower.Fresh(s.now(), rowing.FreshWindow)
	if !ok {
		return
	}
	result.Notes = fmt.Sprintf("rower: %dm in %ds, %.1f spm, pace %ds/500m",
		snap.Distance, snap.Duration, snap.StrokeRate, snap.Pace)
}

// SkipSet advances past the current set without recording data.
func (s *Service) SkipSet(ctx context.Context, id string, version int) (Workout, error) {
	return s.transition(ctx, id, version, func(w *Workout) error {
		return w.SkipSet()
	})
}

// SkipExercise abandons the current exercise.
func (s *Service) SkipExercise(ctx context.Context, id string, version int, reason string) (Workout, error) {
	return s.transition(ctx, id, version, func(w *Workout) error {
		return w.SkipExercise(reason)
	})
}

// AcknowledgeRest ends the current rest period.
func (s *Service) AcknowledgeRest(ctx context.Context, id string, version int) (Workout, error) {
	return s.transition(ctx, id, version, func(w *Workout) error {
		return w.AcknowledgeRest()
	})
}

// Substitute swaps the current exercise for the replacement.
func (s *Service) Substitute(ctx context.Context, id string, version int, replacement Exercise) (Workout, error) {
	return s.transition(ctx, id, version, func(w *Workout) error {
		return w.Substitute(replacement)
	})
}

// Finish completes the workout with the athlete's post-workout check.
func (s *Service) Finish(ctx context.Context, id string, version int, post checkin.PostWorkoutCheck) (Workout, error) {
	return s.transition(ctx, id, version, func(w *Workout) error {
		return w.Finish(post, s.now())
	})
}

// ClearAll deletes every stored workout.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.repo.deleteAll(ctx); err != nil {
		return fmt.Errorf("clear workouts: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "cleared all workouts")
	return nil
}

// ClearToday deletes every workout drafted for today. Clearing a day with
// no workouts is not an error.
func (s *Service) ClearToday(ctx context.Context) error {
	date := s.now()
	if err := s.repo.deleteDate(ctx, date); err != nil {
		return fmt.Errorf("clear today's workouts: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "cleared today's workouts",
		slog.String("date", date.Format(dateFormat)))
	return nil
}

func (s *Service) transition(ctx context.Context, id string, version int, fn func(*Workout) error) (Workout, error) {
	w, err := s.repo.update(ctx, id, version, fn)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
			return Workout{}, err
		}
		return Workout{}, fmt.Errorf("update workout %s: %w", id, err)
	}
	return w, nil
}
