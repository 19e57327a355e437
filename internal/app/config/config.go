// Package config loads the application configuration from an optional
// YAML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the externally supplied configuration surface of the core.
type Config struct {
	// Language selects the string table and the transcription language
	// announced to the model. BCP 47 codes; unsupported values fall
	// back to English.
	Language string `yaml:"language" env:"SCRIVO_LANGUAGE" env-default:"en"`

	// Backend is the Ollama-compatible endpoint used for intent
	// resolution.
	Backend BackendConfig `yaml:"backend"`

	// DBPath is the SQLite database location. Empty means
	// ~/.scrivo/scrivo.db.
	DBPath string `yaml:"db_path" env:"SCRIVO_DB_PATH" env-default:""`

	// Scheduler controls the due-item sweep.
	Scheduler SchedulerConfig `yaml:"scheduler"`

	LogLevel string `yaml:"log_level" env:"SCRIVO_LOG_LEVEL" env-default:"warn"`
}

type BackendConfig struct {
	URL            string        `yaml:"url" env:"SCRIVO_BACKEND_URL" env-default:"http://localhost:11434"`
	Model          string        `yaml:"model" env:"SCRIVO_BACKEND_MODEL" env-default:"gpt-oss:120b-cloud"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"SCRIVO_REQUEST_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `yaml:"ping_timeout" env:"SCRIVO_PING_TIMEOUT" env-default:"5s"`
}

type SchedulerConfig struct {
	// SweepInterval is the pause between due-item sweeps.
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SCRIVO_SWEEP_INTERVAL" env-default:"30s"`

	// LeadMinutes is how long before an appointment's time the
	// notification fires.
	LeadMinutes int `yaml:"lead_minutes" env:"SCRIVO_LEAD_MINUTES" env-default:"15"`
}

// Load reads configuration from path (when non-empty) and the
// environment. Environment variables win over file values.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env: %w", err)
		}
	}
	return cfg, nil
}

// ResolveDBPath returns the configured database path, defaulting to
// ~/.scrivo/scrivo.db.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".scrivo", "scrivo.db"), nil
}

// Lead returns the appointment notification lead time as a Duration.
func (c Config) Lead() time.Duration {
	return time.Duration(c.Scheduler.LeadMinutes) * time.Minute
}
