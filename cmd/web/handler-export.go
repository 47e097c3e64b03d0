package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// exportGET streams a snapshot of the whole database as a downloadable
// SQLite file.
func (app *application) exportGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	exportPath, err := app.database.Export(ctx, os.TempDir())
	if err != nil {
		app.serverError(w, r, fmt.Errorf("export database: %w", err))
		return
	}

	// Clean up the temporary file when done
	defer func() {
		if removeErr := os.Remove(exportPath); removeErr != nil {
			app.logger.LogAttrs(ctx, slog.LevelWarn, "failed to remove temporary export file",
				slog.String("path", exportPath), slog.Any("error", removeErr))
		}
	}()

	file, err := os.Open(exportPath)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("open export file: %w", err))
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			app.logger.LogAttrs(ctx, slog.LevelWarn, "failed to close export file",
				slog.String("path", exportPath), slog.Any("error", closeErr))
		}
	}()

	// Set headers for file download
	filename := filepath.Base(exportPath)
	w.Header().Set("Content-Type", "application/x-sqlite3")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))

	// Stream the file to the client
	_, err = io.Copy(w, file)
	if err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "failed to stream export file to client",
			slog.String("path", exportPath), slog.Any("error", err))
		return
	}
}
