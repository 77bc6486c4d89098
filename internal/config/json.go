package config

import (
	"encoding/json"
	"os"

	"github.com/origami-app/origami/internal/flagx"
	"github.com/origami-app/origami/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "1m" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DBPath           string         `json:"db_path"`
	BackupDir        string         `json:"backup_dir"`
	ReminderInterval timex.Duration `json:"reminder_interval"`
}

// parseJson overlays Config with values loaded from a JSON file. The
// file path comes from the -c/-config flags; when absent, nothing is
// loaded. Read or unmarshal errors panic (caller should recover if
// desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.BackupDir != "" {
		cfg.BackupDir = jc.BackupDir
	}
	if jc.ReminderInterval.Duration != 0 {
		cfg.ReminderInterval = jc.ReminderInterval.Duration
	}
}
