package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/KarloJair/charlore-api/internal/flagx"
	"github.com/KarloJair/charlore-api/internal/timex"
)

// jsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "20m" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config.
type jsonConfig struct {
	Address        string         `json:"address"`
	DatabaseDSN    string         `json:"database_dsn"`
	SecretKey      string         `json:"secret_key"`
	AccessTokenTTL timex.Duration `json:"access_token_ttl"`
}

// parseJSON loads configuration values from the JSON file named by the
// -c or -config command-line flags. If neither flag is set, no file is
// loaded. If the file cannot be read or contains invalid JSON, the
// function panics. Empty fields leave the current value untouched.
func parseJSON(config *Config) {

	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &jsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenTTL.Duration != 0 {
		config.AccessTokenTTL = time.Duration(c.AccessTokenTTL.Duration)
	}
}
