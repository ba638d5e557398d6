package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "data/records.db", cfg.Database.SQLitePath)
	assert.Equal(t, "0 0 7 * * *", cfg.Schedule.DailyCron)
	assert.Equal(t, ":8080", cfg.API.Addr)
	assert.Nil(t, cfg.Thresholds.ACWRHigh)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	path := writeConfig(t, `
telegram:
  enabled: true
  bot_token: file-token
  chat_id: "100"
thresholds:
  acwr_moderate: 1.2
  default_days: 14
log:
  level: debug
`)
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("ACWR_HIGH", "1.7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Telegram.BotToken)
	assert.Equal(t, "100", cfg.Telegram.ChatID)
	require.NotNil(t, cfg.Thresholds.ACWRModerate)
	assert.Equal(t, 1.2, *cfg.Thresholds.ACWRModerate)
	assert.Equal(t, 1.7, *cfg.Thresholds.ACWRHigh)
	assert.Equal(t, 14, *cfg.Thresholds.DefaultDays)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Warnings())
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "thresholds: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(writeConfig(t, "telegram:\n  enabled: true\n"))
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "bot_token")

	cfg, err = Load(writeConfig(t, "thresholds:\n  acwr_high: -1\n"))
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "acwr_high")
}

func TestWarnings_InvertedThresholds(t *testing.T) {
	cfg, err := Load(writeConfig(t, "thresholds:\n  acwr_moderate: 1.6\n  acwr_high: 1.4\n"))
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Warnings(), 1)
}

func TestLoad_ScheduleAndThresholdEnv(t *testing.T) {
	t.Setenv("CRON_WEEKLY", "0 30 9 * * 5")
	t.Setenv("LOAD_SPIKE_PERCENT", "35")
	t.Setenv("DEFAULT_DAYS", "21")

	cfg, err := Load(writeConfig(t, "thresholds:\n  load_spike_percent: 80\n"))
	require.NoError(t, err)
	assert.Equal(t, "0 30 9 * * 5", cfg.Schedule.WeeklyCron)
	require.NotNil(t, cfg.Thresholds.LoadSpikePercent)
	assert.Equal(t, 35.0, *cfg.Thresholds.LoadSpikePercent)
	require.NotNil(t, cfg.Thresholds.DefaultDays)
	assert.Equal(t, 21, *cfg.Thresholds.DefaultDays)
}

func TestValidate_SpikePercentFromEnv(t *testing.T) {
	t.Setenv("LOAD_SPIKE_PERCENT", "0")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "load_spike_percent")
}
