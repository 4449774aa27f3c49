package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Log formats accepted by RUNNER_LOG_FORMAT.
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Settings holds the runner's own configuration. Job content never comes from
// here; it only controls how the engine is found and how the runner logs.
type Settings struct {
	EngineBinary string `env:"RUNNER_ENGINE_BIN,default=lighteval"`
	DatasetRoot  string `env:"RUNNER_DATASET_ROOT,default=."`
	LogLevel     string `env:"RUNNER_LOG_LEVEL,default=info"`
	LogFormat    string `env:"RUNNER_LOG_FORMAT,default=auto"`
}

// Load reads settings from the process environment.
func Load(ctx context.Context) (Settings, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads settings through lookuper, normalizes and validates them.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (Settings, error) {
	var settings Settings
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &settings,
		Lookuper: lookuper,
	}); err != nil {
		return Settings{}, fmt.Errorf("process settings: %w", err)
	}
	settings.normalize()
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s *Settings) normalize() {
	s.EngineBinary = strings.TrimSpace(s.EngineBinary)
	s.DatasetRoot = strings.TrimSpace(s.DatasetRoot)
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	s.LogFormat = strings.ToLower(strings.TrimSpace(s.LogFormat))
}
