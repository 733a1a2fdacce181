package config

import (
	"strings"
	"time"

	"github.com/aleister1102/utilcode/internal/common"
	"github.com/aleister1102/utilcode/internal/timeutil"
	"github.com/rs/zerolog"
)

// TimeConfig controls how times are formatted, parsed and described.
type TimeConfig struct {
	DefaultPattern string `json:"default_pattern,omitempty" yaml:"default_pattern,omitempty" validate:"omitempty,datepattern"`
	Timezone       string `json:"timezone,omitempty" yaml:"timezone,omitempty" validate:"omitempty,timezone"`
	Locale         string `json:"locale,omitempty" yaml:"locale,omitempty" validate:"omitempty,locale"`
	CacheMode      string `json:"cache_mode,omitempty" yaml:"cache_mode,omitempty" validate:"omitempty,cachemode"`
}

func NewDefaultTimeConfig() TimeConfig {
	return TimeConfig{
		DefaultPattern: DefaultTimePattern,
		Timezone:       DefaultTimeZone,
		Locale:         DefaultTimeLocale,
		CacheMode:      DefaultTimeCacheMode,
	}
}

// Location resolves Timezone. Empty and "Local" mean time.Local.
func (tc TimeConfig) Location() (*time.Location, error) {
	if tc.Timezone == "" || strings.EqualFold(tc.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tc.Timezone)
	if err != nil {
		return nil, common.NewConfigurationError("time_config", "timezone", err.Error())
	}
	return loc, nil
}

// ConverterOptions translates the section into timeutil options.
func (tc TimeConfig) ConverterOptions(logger zerolog.Logger) ([]timeutil.Option, error) {
	loc, err := tc.Location()
	if err != nil {
		return nil, err
	}

	locale := timeutil.English
	if tc.Locale != "" {
		locale, err = timeutil.ParseLocale(tc.Locale)
		if err != nil {
			return nil, common.NewConfigurationError("time_config", "locale", err.Error())
		}
	}

	opts := []timeutil.Option{
		timeutil.WithLocation(loc),
		timeutil.WithLocale(locale),
		timeutil.WithLogger(logger),
	}
	if tc.DefaultPattern != "" {
		opts = append(opts, timeutil.WithDefaultPattern(tc.DefaultPattern))
	}

	switch strings.ToLower(tc.CacheMode) {
	case "", CacheModeShared:
		opts = append(opts, timeutil.WithCache(timeutil.NewSharedCache(loc)))
	case CacheModeLocal:
		opts = append(opts, timeutil.WithCache(timeutil.NewLocalCache(loc)))
	default:
		return nil, common.NewConfigurationError("time_config", "cache_mode", "must be 'shared' or 'local'")
	}

	return opts, nil
}
