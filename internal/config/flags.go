package config

import (
	"flag"
	"os"
	"time"

	"github.com/origami-app/origami/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the sqlite database file
//	-b string   directory for database backups
//	-i int      reminder check interval in seconds
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the database file")
	fs.StringVar(&cfg.BackupDir, "b", cfg.BackupDir, "directory for database backups")
	reminderInterval := fs.Int("i", int(cfg.ReminderInterval.Seconds()), "reminder check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ReminderInterval = time.Duration(*reminderInterval) * time.Second
}
