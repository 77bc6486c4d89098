package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env
// file in the working directory is loaded first, without overriding
// variables already set in the process environment.
//
// Recognized variables:
//
//	ORIGAMI_DB_PATH            path of the sqlite database file
//	ORIGAMI_BACKUP_DIR         directory for database backups
//	ORIGAMI_REMINDER_INTERVAL  duration string, e.g. "30s" or "2m"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ORIGAMI_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ORIGAMI_BACKUP_DIR"); v != "" {
		cfg.BackupDir = v
	}
	if v := os.Getenv("ORIGAMI_REMINDER_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ReminderInterval = d
		}
	}
}
