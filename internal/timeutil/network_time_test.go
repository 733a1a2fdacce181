package timeutil

import (
	"testing"

	"github.com/aleister1102/utilcode/internal/appenv"
	"github.com/stretchr/testify/assert"
)

type stubEnv struct {
	level    int
	settings appenv.Settings
}

func (s stubEnv) OSVersion() string         { return "test" }
func (s stubEnv) SDKVersion() int           { return s.level }
func (s stubEnv) DeviceID() string          { return "device" }
func (s stubEnv) Settings() appenv.Settings { return s.settings }

func TestIsUsingNetworkProvidedTime(t *testing.T) {
	globalOn := appenv.MapSettings{Global: map[string]int{appenv.SettingAutoTime: 1}}
	systemOn := appenv.MapSettings{System: map[string]int{appenv.SettingAutoTime: 1}}

	tests := []struct {
		name     string
		env      appenv.Environment
		expected bool
	}{
		{"nil environment", nil, false},
		{"nil settings", stubEnv{level: 30}, false},
		{"modern level reads global", stubEnv{level: 30, settings: globalOn}, true},
		{"modern level ignores system", stubEnv{level: 30, settings: systemOn}, false},
		{"unknown level reads global", stubEnv{level: 0, settings: globalOn}, true},
		{"legacy level reads system", stubEnv{level: 16, settings: systemOn}, true},
		{"legacy level ignores global", stubEnv{level: 16, settings: globalOn}, false},
		{"first global level", stubEnv{level: appenv.APILevelJellyBeanMR1, settings: globalOn}, true},
		{"unset defaults to off", stubEnv{level: 30, settings: appenv.MapSettings{}}, false},
		{"value other than one", stubEnv{level: 30, settings: appenv.MapSettings{Global: map[string]int{appenv.SettingAutoTime: 2}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUsingNetworkProvidedTime(tt.env))
		})
	}
}
