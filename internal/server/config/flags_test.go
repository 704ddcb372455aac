package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{
			name: "all flags set",
			args: []string{"cmd", "-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "15"},
			expected: &Config{
				Address:        "127.0.0.1:9090",
				DatabaseDSN:    "db",
				SecretKey:      "secret",
				AccessTokenTTL: 15 * time.Minute,
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"cmd", "-a", ":9000", "-zzz", "whatever"},
			expected: &Config{
				Address:        ":9000",
				AccessTokenTTL: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":7070")
	t.Setenv("SECRET_KEY", "from-env")
	t.Setenv("ACCESS_TOKEN_TTL", "45m")

	config := &Config{}
	parseEnv(config)

	assert.Equal(t, ":7070", config.Address)
	assert.Equal(t, "from-env", config.SecretKey)
	assert.Equal(t, 45*time.Minute, config.AccessTokenTTL)
}
