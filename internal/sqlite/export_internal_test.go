package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stronghold-fit/stronghold/internal/testhelpers"
)

func TestDatabase_Export(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("Failed to close database: %v", closeErr)
		}
	}()

	if _, err = db.ReadWrite.ExecContext(ctx, `
		INSERT INTO check_ins (
			id, check_date, knee, shoulder, energy, sleep,
			mental_state, stress, clarity, emotion, intensity, created_at
		) VALUES ('ci-1', '2026-08-28', 8, 7, 6, 7, 'clear', 3, 8, 'peaceful', 5, '2026-08-28T07:00:00.000Z')`); err != nil {
		t.Fatalf("Failed to insert check-in: %v", err)
	}

	exportPath, err := db.Export(ctx, t.TempDir())
	if err != nil {
		t.Fatalf("Failed to export database: %v", err)
	}
	if filepath.Ext(exportPath) != ".sqlite3" {
		t.Errorf("unexpected export path %q", exportPath)
	}

	exported, err := sql.Open("sqlite3", exportPath)
	if err != nil {
		t.Fatalf("Failed to open exported database: %v", err)
	}
	defer func() {
		if closeErr := exported.Close(); closeErr != nil {
			t.Errorf("Failed to close exported database: %v", closeErr)
		}
	}()

	var count int
	if err = exported.QueryRowContext(ctx, `SELECT COUNT(*) FROM check_ins`).Scan(&count); err != nil {
		t.Fatalf("Failed to count exported check-ins: %v", err)
	}
	if count != 1 {
		t.Errorf("want 1 exported check-in, got %d", count)
	}
}
