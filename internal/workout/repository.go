package workout

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/sqlite"
)

const (
	timestampFormat = "2006-01-02T15:04:05.000Z"
	dateFormat      = time.DateOnly
)

// exercisesDoc is the JSON shape of the exercises column.
type exercisesDoc struct {
	Warmup   []Exercise `json:"warmup"`
	Strength []Exercise `json:"strength"`
	Cooldown []Exercise `json:"cooldown"`
}

// sqliteRepository handles database operations for workouts.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// newSQLiteRepository creates a new SQLite-backed workout repository.
func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{
		db:     db,
		logger: logger,
	}
}

// create inserts a new workout row.
func (r *sqliteRepository) create(ctx context.Context, w Workout) error {
	exercises, err := json.Marshal(exercisesDoc{Warmup: w.Warmup, Strength: w.Strength, Cooldown: w.Cooldown})
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}
	postCheck, err := nullPostCheck(w.PostCheck)
	if err != nil {
		return err
	}
	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO workouts (
			id, workout_date, workout_type, status, estimated_minutes,
			actual_minutes, reasoning, coaching_notes, exercises,
			current_phase, current_exercise, current_set, resting_until,
			post_check, version, created_at, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID,
		w.Date.Format(dateFormat),
		string(w.Type),
		string(w.Status),
		w.EstimatedDuration,
		nullMinutes(w.ActualDuration),
		w.Reasoning,
		w.CoachingNotes,
		string(exercises),
		w.CurrentPhase,
		w.CurrentExercise,
		w.CurrentSet,
		nullTimestamp(w.RestingUntil),
		postCheck,
		w.Version,
		w.CreatedAt.UTC().Format(timestampFormat),
		nullTimestamp(w.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}

const workoutColumns = `id, workout_date, workout_type, status, estimated_minutes,
	actual_minutes, reasoning, coaching_notes, exercises,
	current_phase, current_exercise, current_set, resting_until,
	post_check, version, created_at, completed_at`

// getByID retrieves one workout.
func (r *sqliteRepository) getByID(ctx context.Context, id string) (Workout, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE id = ?`, id)
	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Workout{}, ErrNotFound
	}
	if err != nil {
		return Workout{}, fmt.Errorf("query workout: %w", err)
	}
	return w, nil
}

// latestForDate retrieves the most recently created workout for a day.
func (r *sqliteRepository) latestForDate(ctx context.Context, date time.Time) (Workout, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx,
		`SELECT `+workoutColumns+` FROM workouts
		WHERE workout_date = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, date.Format(dateFormat))
	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Workout{}, ErrNotFound
	}
	if err != nil {
		return Workout{}, fmt.Errorf("query workout for date: %w", err)
	}
	return w, nil
}

// listCompleted retrieves every completed workout, oldest first.
func (r *sqliteRepository) listCompleted(ctx context.Context) (_ []Workout, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx,
		`SELECT `+workoutColumns+` FROM workouts
		WHERE status = ?
		ORDER BY workout_date ASC, created_at ASC`, string(StatusCompleted))
	if err != nil {
		return nil, fmt.Errorf("query completed workouts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var workouts []Workout
	for rows.Next() {
		var w Workout
		w, err = scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout row: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return workouts, nil
}

// update applies fn to the stored workout and persists the result. The
// caller's expected version is checked against the stored row twice: once on
// read and once in the UPDATE itself, so a concurrent writer always loses
// with ErrConflict. A successful update increments Version.
func (r *sqliteRepository) update(ctx context.Context, id string, expectedVersion int, fn func(*Workout) error) (Workout, error) {
	w, err := r.getByID(ctx, id)
	if err != nil {
		return Workout{}, err
	}
	if w.Version != expectedVersion {
		return Workout{}, fmt.Errorf("%w: have version %d, expected %d", ErrConflict, w.Version, expectedVersion)
	}
	if err = fn(&w); err != nil {
		return Workout{}, err
	}
	w.Version = expectedVersion + 1

	exercises, err := json.Marshal(exercisesDoc{Warmup: w.Warmup, Strength: w.Strength, Cooldown: w.Cooldown})
	if err != nil {
		return Workout{}, fmt.Errorf("marshal exercises: %w", err)
	}
	postCheck, err := nullPostCheck(w.PostCheck)
	if err != nil {
		return Workout{}, err
	}
	res, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE workouts SET
			status = ?,
			actual_minutes = ?,
			exercises = ?,
			current_phase = ?,
			current_exercise = ?,
			current_set = ?,
			resting_until = ?,
			post_check = ?,
			version = ?,
			completed_at = ?
		WHERE id = ? AND version = ?`,
		string(w.Status),
		nullMinutes(w.ActualDuration),
		string(exercises),
		w.CurrentPhase,
		w.CurrentExercise,
		w.CurrentSet,
		nullTimestamp(w.RestingUntil),
		postCheck,
		w.Version,
		nullTimestamp(w.CompletedAt),
		id,
		expectedVersion,
	)
	if err != nil {
		return Workout{}, fmt.Errorf("update workout: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Workout{}, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return Workout{}, fmt.Errorf("%w: workout changed underneath version %d", ErrConflict, expectedVersion)
	}
	return w, nil
}

// deleteAll removes every workout.
func (r *sqliteRepository) deleteAll(ctx context.Context) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `DELETE FROM workouts`); err != nil {
		return fmt.Errorf("delete workouts: %w", err)
	}
	return nil
}

// deleteDate removes every workout for one day.
func (r *sqliteRepository) deleteDate(ctx context.Context, date time.Time) error {
	_, err := r.db.ReadWrite.ExecContext(ctx,
		`DELETE FROM workouts WHERE workout_date = ?`, date.Format(dateFormat))
	if err != nil {
		return fmt.Errorf("delete workouts for date: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row rowScanner) (Workout, error) {
	var (
		w             Workout
		dateStr       string
		typeStr       string
		statusStr     string
		actualMinutes sql.NullInt64
		exercisesStr  string
		restingUntil  sql.NullString
		postCheck     sql.NullString
		createdAtStr  string
		completedAt   sql.NullString
	)
	err := row.Scan(
		&w.ID,
		&dateStr,
		&typeStr,
		&statusStr,
		&w.EstimatedDuration,
		&actualMinutes,
		&w.Reasoning,
		&w.CoachingNotes,
		&exercisesStr,
		&w.CurrentPhase,
		&w.CurrentExercise,
		&w.CurrentSet,
		&restingUntil,
		&postCheck,
		&w.Version,
		&createdAtStr,
		&completedAt,
	)
	if err != nil {
		return Workout{}, err
	}

	w.Type = Type(typeStr)
	w.Status = Status(statusStr)
	if w.Date, err = time.Parse(dateFormat, dateStr); err != nil {
		return Workout{}, fmt.Errorf("parse workout date %q: %w", dateStr, err)
	}
	if w.CreatedAt, err = time.Parse(timestampFormat, createdAtStr); err != nil {
		return Workout{}, fmt.Errorf("parse created at %q: %w", createdAtStr, err)
	}
	if actualMinutes.Valid {
		w.ActualDuration = int(actualMinutes.Int64)
	}

	var doc exercisesDoc
	if err = json.Unmarshal([]byte(exercisesStr), &doc); err != nil {
		return Workout{}, fmt.Errorf("unmarshal exercises: %w", err)
	}
	w.Warmup = doc.Warmup
	w.Strength = doc.Strength
	w.Cooldown = doc.Cooldown

	if restingUntil.Valid {
		t, parseErr := time.Parse(timestampFormat, restingUntil.String)
		if parseErr != nil {
			return Workout{}, fmt.Errorf("parse resting until %q: %w", restingUntil.String, parseErr)
		}
		w.RestingUntil = &t
	}
	if completedAt.Valid {
		t, parseErr := time.Parse(timestampFormat, completedAt.String)
		if parseErr != nil {
			return Workout{}, fmt.Errorf("parse completed at %q: %w", completedAt.String, parseErr)
		}
		w.CompletedAt = &t
	}
	if postCheck.Valid && postCheck.String != "" {
		var check checkin.PostWorkoutCheck
		if err = json.Unmarshal([]byte(postCheck.String), &check); err != nil {
			return Workout{}, fmt.Errorf("unmarshal post-workout check: %w", err)
		}
		w.PostCheck = &check
	}
	return w, nil
}

func nullMinutes(minutes int) sql.NullInt64 {
	if minutes == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(minutes), Valid: true}
}

func nullTimestamp(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(timestampFormat), Valid: true}
}

func nullPostCheck(check *checkin.PostWorkoutCheck) (sql.NullString, error) {
	if check == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(check)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal post-workout check: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
