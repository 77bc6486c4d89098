package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-d", "/tmp/o.db", "-b", "/tmp/bk", "-i", "10"}, expectPanic: false,
			expected: &Config{DBPath: "/tmp/o.db", BackupDir: "/tmp/bk", ReminderInterval: 10 * time.Second}},
		{name: "Test2 incorrect check interval", args: []string{"cmd", "-d", "/tmp/o.db", "-i", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ORIGAMI_DB_PATH", "/env/origami.db")
	t.Setenv("ORIGAMI_REMINDER_INTERVAL", "30s")

	cfg := &Config{DBPath: "default.db", BackupDir: "/keep", ReminderInterval: time.Minute}
	parseEnv(cfg)

	assert.Equal(t, "/env/origami.db", cfg.DBPath)
	assert.Equal(t, "/keep", cfg.BackupDir)
	assert.Equal(t, 30*time.Second, cfg.ReminderInterval)
}
