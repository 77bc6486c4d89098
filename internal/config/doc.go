// Package config loads runtime configuration for the Origami CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, optionally seeded from a .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the sqlite database file
//	-b string   directory for database backups
//	-i int      reminder check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be
// either strings like "1m" or integer nanoseconds:
//
//	{
//	  "db_path": "/home/user/.origami/origami.db",
//	  "backup_dir": "/home/user/.origami/backups",
//	  "reminder_interval": "1m"
//	}
//
// Primary API
//
//   - type Config                     — holds DBPath, BackupDir and ReminderInterval
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
