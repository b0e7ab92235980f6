package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesNotificationDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8085
database:
  host: localhost
  port: 3306
  username: root
  database: biblioteca
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Notification.ExpiringWindowDays)
	assert.Equal(t, time.Hour, cfg.Notification.SweepInterval)
	assert.Equal(t, 30*time.Second, cfg.Notification.CacheTTL)
	assert.Equal(t, 14, cfg.Loan.DefaultPeriodDays)
}

func TestLoadRespectsExplicitWindow(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8085
notification:
  expiring_window_days: 7
  sweep_interval: 30m
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Notification.ExpiringWindowDays)
	assert.Equal(t, 30*time.Minute, cfg.Notification.SweepInterval)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db",
		Port:     3306,
		Username: "app",
		Password: "secret",
		Database: "biblioteca",
	}
	assert.Equal(t,
		"app:secret@tcp(db:3306)/biblioteca?charset=utf8mb4&parseTime=True&loc=Local",
		c.GetDSN())
}
