package cli

import (
	"context"
	"os"
	"path/filepath"
)

// Export writes tasks, journal entries and calendar events as CSV files
// into a directory chosen by the user.
func (a *App) Export(ctx context.Context) error {
	dir, err := getSimpleText(a.reader, "Export directory (empty for current)", os.Stdout)
	if err != nil {
		return err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		Error("could not create %s: %v", dir, err)
		return err
	}

	for _, f := range []struct {
		name  string
		write func(context.Context, *os.File) error
	}{
		{"todos.csv", func(ctx context.Context, w *os.File) error { return a.export.ExportTodosCSV(ctx, w) }},
		{"journal.csv", func(ctx context.Context, w *os.File) error { return a.export.ExportJournalCSV(ctx, w) }},
		{"events.csv", func(ctx context.Context, w *os.File) error { return a.export.ExportEventsCSV(ctx, w) }},
	} {
		path := filepath.Join(dir, f.name)
		out, err := os.Create(path)
		if err != nil {
			Error("could not create %s: %v", path, err)
			return err
		}
		if err := f.write(ctx, out); err != nil {
			out.Close()
			Error("export of %s failed: %v", f.name, err)
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		Success("Wrote %s", path)
	}
	return nil
}

// Backup copies the database into the configured backup directory.
func (a *App) Backup(ctx context.Context) error {
	path, err := a.export.Backup()
	if err != nil {
		Error("backup failed: %v", err)
		return err
	}
	Success("Backup written to %s", path)
	return nil
}
