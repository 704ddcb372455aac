package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data := `{
		"address": ":6060",
		"database_dsn": "postgres://u:p@h:5432/charlore",
		"secret_key": "json-secret",
		"access_token_ttl": "30m"
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-c", path}

	config := &Config{}
	config.LoadDefaults()
	parseJSON(config)

	assert.Equal(t, ":6060", config.Address)
	assert.Equal(t, "postgres://u:p@h:5432/charlore", config.DatabaseDSN)
	assert.Equal(t, "json-secret", config.SecretKey)
	assert.Equal(t, 30*time.Minute, config.AccessTokenTTL)
}

func TestParseJSON_NoFileFlag(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseJSON(config)

	assert.Equal(t, ":8080", config.Address)
}
