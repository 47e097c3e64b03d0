package checkin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stronghold-fit/stronghold/internal/sqlite"
)

// Service handles the business logic for daily check-ins.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new check-in service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db, logger),
		logger: logger,
		now:    time.Now,
	}
}

// Submit records the morning check-in for its date. A second submit on the
// same day replaces the earlier one.
func (s *Service) Submit(ctx context.Context, c CheckIn) (CheckIn, error) {
	if err := c.Validate(); err != nil {
		return CheckIn{}, fmt.Errorf("validate check-in: %w", err)
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Date.IsZero() {
		c.Date = s.now()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	if err := s.repo.upsert(ctx, c); err != nil {
		return CheckIn{}, fmt.Errorf("save check-in: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "check-in recorded",
		slog.String("date", c.Date.Format(DateFormat)),
		slog.String("mental_state", string(c.Mental.State)),
		slog.String("emotion", string(c.Emotional.Primary)))
	return c, nil
}

// Today returns the check-in for today, or ErrNotFound when none exists.
func (s *Service) Today(ctx context.Context) (CheckIn, error) {
	return s.ForDate(ctx, s.now())
}

// ForDate returns the check-in for the given day.
func (s *Service) ForDate(ctx context.Context, date time.Time) (CheckIn, error) {
	c, err := s.repo.getByDate(ctx, date)
	if err != nil {
		return CheckIn{}, fmt.Errorf("get check-in for %s: %w", date.Format(DateFormat), err)
	}
	return c, nil
}

// Recent returns up to n check-ins, newest first.
func (s *Service) Recent(ctx context.Context, n int) ([]CheckIn, error) {
	checkins, err := s.repo.list(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("list recent check-ins: %w", err)
	}
	return checkins, nil
}

// ClearAll deletes every stored check-in.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.repo.deleteAll(ctx); err != nil {
		return fmt.Errorf("clear check-ins: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "cleared all check-ins")
	return nil
}

// ClearToday deletes today's check-in. Deleting a day with no check-in is
// not an error.
func (s *Service) ClearToday(ctx context.Context) error {
	date := s.now()
	if err := s.repo.deleteDate(ctx, date); err != nil {
		return fmt.Errorf("clear today's check-in: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "cleared today's check-in",
		slog.String("date", date.Format(DateFormat)))
	return nil
}
