package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	setDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(newViper(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, &SchedulerConfig{
		Port:                  9095,
		BodyLimit:             1024 * 1024,
		RoundRobinTimeQuantum: 2,
		MaxProcesses:          64,
		MaxTime:               100000,
	}, cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := "port: 8080\nscheduler:\n  round_robin:\n    time_quantum: 4\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := load(newViper(dir))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, 64, cfg.MaxProcesses)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("SCHEDULER_SCHEDULER_MAX_PROCESSES", "8")

	cfg, err := load(newViper(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.MaxProcesses)
}

func TestLoadMaxTimeFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("scheduler:\n  max_time: 500\n"), 0o644))

	cfg, err := load(newViper(dir))
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.MaxTime)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: [1,"), 0o644))

	_, err := load(newViper(dir))
	assert.Error(t, err)
}
