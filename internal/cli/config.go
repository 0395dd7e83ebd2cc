package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"datavault360/internal/client"

	"github.com/spf13/viper"
)

// Config is the vaultctl configuration; every key can come from a
// VAULTCTL_* environment variable or a YAML/JSON/TOML config file.
type Config struct {
	APIURL      string        `mapstructure:"API_URL"`
	SessionFile string        `mapstructure:"SESSION_FILE"`
	Timeout     time.Duration `mapstructure:"TIMEOUT"`
	FanOut      int           `mapstructure:"FAN_OUT"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	LogFormat   string        `mapstructure:"LOG_FORMAT"`
}

func LoadConfig(v *viper.Viper, file string) (*Config, error) {
	v.SetEnvPrefix("VAULTCTL")
	v.AutomaticEnv()

	v.SetDefault("API_URL", "http://localhost:8080/api")
	v.SetDefault("SESSION_FILE", defaultSessionFile())
	v.SetDefault("TIMEOUT", "30s")
	v.SetDefault("FAN_OUT", client.DefaultFanOut)
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")

	for _, key := range []string{"API_URL", "SESSION_FILE", "TIMEOUT", "FAN_OUT", "LOG_LEVEL", "LOG_FORMAT"} {
		_ = v.BindEnv(key)
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName(".vaultctl")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.APIURL == "" {
		return nil, errors.New("API_URL must not be empty")
	}
	if cfg.FanOut < 1 {
		cfg.FanOut = client.DefaultFanOut
	}
	return cfg, nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "vaultctl", "session.json")
}
