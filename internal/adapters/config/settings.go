package config

import (
	env "github.com/Netflix/go-env"
	"go.trai.ch/roster/internal/core/domain"
	"go.trai.ch/zerr"
)

// Settings are the environment defaults for the command line flags.
type Settings struct {
	LogLevel string `env:"ROSTER_LOG_LEVEL,default=warn"`
	LogJSON  bool   `env:"ROSTER_LOG_JSON,default=false"`
	Seed     string `env:"ROSTER_SEED"`
}

// LoadSettings decodes Settings from the process environment.
func LoadSettings() (*Settings, error) {
	var s Settings
	if _, err := env.UnmarshalFromEnviron(&s); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}
	return &s, nil
}
