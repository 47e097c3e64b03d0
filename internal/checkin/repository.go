package checkin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stronghold-fit/stronghold/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// sqliteRepository handles database operations for check-ins.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// newSQLiteRepository creates a new SQLite-backed check-in repository.
func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{
		db:     db,
		logger: logger,
	}
}

// upsert writes the check-in, replacing any earlier one for the same date.
func (r *sqliteRepository) upsert(ctx context.Context, c CheckIn) error {
	var weight sql.NullFloat64
	if c.Physical.Weight != nil {
		weight = sql.NullFloat64{Float64: *c.Physical.Weight, Valid: true}
	}
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO check_ins (
			id, check_date, knee, shoulder, energy, sleep, weight_lbs,
			mental_state, stress, clarity, mental_notes,
			emotion, intensity, secondary_emotion, emotional_notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (check_date) DO UPDATE SET
			id = excluded.id,
			knee = excluded.knee,
			shoulder = excluded.shoulder,
			energy = excluded.energy,
			sleep = excluded.sleep,
			weight_lbs = excluded.weight_lbs,
			mental_state = excluded.mental_state,
			stress = excluded.stress,
			clarity = excluded.clarity,
			mental_notes = excluded.mental_notes,
			emotion = excluded.emotion,
			intensity = excluded.intensity,
			secondary_emotion = excluded.secondary_emotion,
			emotional_notes = excluded.emotional_notes,
			created_at = excluded.created_at`,
		c.ID,
		c.Date.Format(DateFormat),
		c.Physical.Knee,
		c.Physical.Shoulder,
		c.Physical.Energy,
		c.Physical.Sleep,
		weight,
		string(c.Mental.State),
		c.Mental.Stress,
		c.Mental.Clarity,
		c.Mental.Notes,
		string(c.Emotional.Primary),
		c.Emotional.Intensity,
		string(c.Emotional.Secondary),
		c.Emotional.Notes,
		c.CreatedAt.UTC().Format(timestampFormat),
	)
	if err != nil {
		return fmt.Errorf("upsert check-in: %w", err)
	}
	return nil
}

const checkInColumns = `id, check_date, knee, shoulder, energy, sleep, weight_lbs,
	mental_state, stress, clarity, mental_notes,
	emotion, intensity, secondary_emotion, emotional_notes, created_at`

// getByDate retrieves the check-in for a specific date.
func (r *sqliteRepository) getByDate(ctx context.Context, date time.Time) (CheckIn, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx,
		`SELECT `+checkInColumns+` FROM check_ins WHERE check_date = ?`,
		date.Format(DateFormat))
	c, err := scanCheckIn(row)
	if errors.Is(err, sql.ErrNoRows) {
		return CheckIn{}, ErrNotFound
	}
	if err != nil {
		return CheckIn{}, fmt.Errorf("query check-in: %w", err)
	}
	return c, nil
}

// list retrieves up to limit check-ins, newest first.
func (r *sqliteRepository) list(ctx context.Context, limit int) (_ []CheckIn, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx,
		`SELECT `+checkInColumns+` FROM check_ins ORDER BY check_date DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query check-ins: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var checkins []CheckIn
	for rows.Next() {
		var c CheckIn
		c, err = scanCheckIn(rows)
		if err != nil {
			return nil, fmt.Errorf("scan check-in row: %w", err)
		}
		checkins = append(checkins, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return checkins, nil
}

// deleteAll removes every check-in.
func (r *sqliteRepository) deleteAll(ctx context.Context) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `DELETE FROM check_ins`); err != nil {
		return fmt.Errorf("delete check-ins: %w", err)
	}
	return nil
}

// deleteDate removes the check-in for one day, if any.
func (r *sqliteRepository) deleteDate(ctx context.Context, date time.Time) error {
	_, err := r.db.ReadWrite.ExecContext(ctx,
		`DELETE FROM check_ins WHERE check_date = ?`, date.Format(DateFormat))
	if err != nil {
		return fmt.Errorf("delete check-in for date: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCheckIn(row rowScanner) (CheckIn, error) {
	var (
		c            CheckIn
		dateStr      string
		weight       sql.NullFloat64
		state        string
		emotion      string
		secondary    string
		createdAtStr string
	)
	err := row.Scan(
		&c.ID,
		&dateStr,
		&c.Physical.Knee,
		&c.Physical.Shoulder,
		&c.Physical.Energy,
		&c.Physical.Sleep,
		&weight,
		&state,
		&c.Mental.Stress,
		&c.Mental.Clarity,
		&c.Mental.Notes,
		&emotion,
		&c.Emotional.Intensity,
		&secondary,
		&c.Emotional.Notes,
		&createdAtStr,
	)
	if err != nil {
		return CheckIn{}, err
	}
	if c.Date, err = time.Parse(DateFormat, dateStr); err != nil {
		return CheckIn{}, fmt.Errorf("parse check date %q: %w", dateStr, err)
	}
	if c.CreatedAt, err = time.Parse(timestampFormat, createdAtStr); err != nil {
		return CheckIn{}, fmt.Errorf("parse created at %q: %w", createdAtStr, err)
	}
	if weight.Valid {
		c.Physical.Weight = &weight.Float64
	}
	c.Mental.State = MentalState(state)
	c.Emotional.Primary = Emotion(emotion)
	c.Emotional.Secondary = Emotion(secondary)
	return c, nil
}
