package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ironrift/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ironrift.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRun_HeadlessDuration(t *testing.T) {
	logDir := t.TempDir()
	path := writeConfig(t, `
[sim]
seed = 11

[battle]
units_per_team = 3

[log]
enabled = true
dir = "`+filepath.ToSlash(logDir)+`"
level = "debug"
`)

	outcome, err := run(context.Background(), options{configPath: path, headless: true, duration: 200 * time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeNone, outcome)

	data, err := os.ReadFile(filepath.Join(logDir, "ironrift.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "battle started")
	assert.Contains(t, string(data), "simulation stopped")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := run(ctx, options{headless: true})
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeNone, outcome)
}

func TestRun_BadConfig(t *testing.T) {
	path := writeConfig(t, "[sim]\ntick_rate = 0\n")

	_, err := run(context.Background(), options{configPath: path, headless: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick_rate")
}
