package config

import (
	"github.com/aleister1102/utilcode/internal/appenv"
	"github.com/rs/zerolog"
)

// AppConfig describes the environment the application reports.
type AppConfig struct {
	APILevel int            `json:"api_level,omitempty" yaml:"api_level,omitempty" validate:"min=0"`
	DeviceID string         `json:"device_id,omitempty" yaml:"device_id,omitempty"`
	Settings SettingsConfig `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// SettingsConfig seeds the device settings tables.
type SettingsConfig struct {
	Global map[string]int `json:"global,omitempty" yaml:"global,omitempty"`
	System map[string]int `json:"system,omitempty" yaml:"system,omitempty"`
}

func NewDefaultAppConfig() AppConfig {
	return AppConfig{
		APILevel: DefaultAPILevel,
		Settings: SettingsConfig{
			Global: map[string]int{},
			System: map[string]int{},
		},
	}
}

// EnvOptions translates the section into appenv options.
func (ac AppConfig) EnvOptions(logger zerolog.Logger) appenv.Options {
	return appenv.Options{
		APILevel: ac.APILevel,
		DeviceID: ac.DeviceID,
		Settings: appenv.MapSettings{
			Global: ac.Settings.Global,
			System: ac.Settings.System,
		},
		Logger: logger,
	}
}
