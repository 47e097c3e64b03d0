package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Export writes a consistent snapshot of the whole database into a standalone
// SQLite file under basePath and returns the file path. The athlete can take
// the snapshot to another device or keep it as a backup.
func (db *Database) Export(ctx context.Context, basePath string) (string, error) {
	exportPath := filepath.Join(basePath, fmt.Sprintf("stronghold-%s.sqlite3", time.Now().UTC().Format("20060102T150405")))

	// VACUUM INTO refuses to overwrite an existing file.
	if err := os.Remove(exportPath); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("remove stale export file: %w", err)
	}

	// The read pool is opened with _query_only, so the snapshot runs on the
	// write connection.
	if _, err := db.ReadWrite.ExecContext(ctx, `VACUUM INTO ?`, exportPath); err != nil {
		return "", fmt.Errorf("vacuum into export file: %w", err)
	}

	return exportPath, nil
}
