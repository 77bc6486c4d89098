package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the Origami CLI.
//
// Fields:
//   - DBPath: location of the sqlite database file.
//   - BackupDir: directory that receives database backups.
//   - ReminderInterval: how often the reminder watcher checks for due events.
//
// Units: ReminderInterval is a time.Duration (e.g., 1*time.Minute).
type Config struct {
	DBPath           string
	BackupDir        string
	ReminderInterval time.Duration
}

// LoadDefaults populates c with sensible defaults. The database lives
// under ~/.origami when a home directory can be resolved, otherwise in
// the current directory.
func (c *Config) LoadDefaults() {
	base := ".origami"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".origami")
	}
	c.DBPath = filepath.Join(base, "origami.db")
	c.BackupDir = filepath.Join(base, "backups")
	c.ReminderInterval = 1 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
