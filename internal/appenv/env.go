// Package appenv describes the environment the application runs in: OS
// version, API level, a stable device identifier and device settings.
// Callers build one Env at startup and pass it to whatever needs it.
package appenv

import (
	"context"
	"fmt"
	"strings"

	"github.com/aleister1102/utilcode/internal/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// APILevelJellyBeanMR1 is the first API level with the global settings table.
const APILevelJellyBeanMR1 = 17

const unknownVersion = "unknown"

// Environment answers environment queries.
type Environment interface {
	OSVersion() string
	// SDKVersion returns the platform API level, 0 when unknown.
	SDKVersion() int
	DeviceID() string
	Settings() Settings
}

// Options configures New.
type Options struct {
	APILevel int
	// DeviceID overrides the derived identifier when set.
	DeviceID string
	Settings Settings
	// Prober defaults to HostProber.
	Prober Prober
	Logger zerolog.Logger
}

// Env is the default Environment. It is read-only after New and safe for
// concurrent use.
type Env struct {
	info     HostInfo
	apiLevel int
	deviceID string
	settings Settings
	hostErr  error
}

// New probes the host and builds an Env. A failed probe is logged and
// leaves the host facts empty (see HostErr); only invalid options are errors.
func New(ctx context.Context, opts Options) (*Env, error) {
	if opts.APILevel < 0 {
		return nil, common.NewValidationError("api_level", opts.APILevel, "must not be negative")
	}

	prober := opts.Prober
	if prober == nil {
		prober = HostProber{}
	}

	info, err := prober.Probe(ctx)
	var hostErr error
	if err != nil {
		opts.Logger.Warn().Err(err).Msg("Host probe failed, environment facts will be incomplete")
		info = HostInfo{}
		hostErr = fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}

	settings := opts.Settings
	if settings == nil {
		settings = MapSettings{}
	}

	env := &Env{
		info:     info,
		apiLevel: opts.APILevel,
		settings: settings,
		hostErr:  hostErr,
	}
	env.deviceID = resolveDeviceID(opts.DeviceID, info)

	opts.Logger.Debug().
		Str("os_version", env.OSVersion()).
		Int("api_level", env.apiLevel).
		Str("device_id", env.deviceID).
		Msg("Environment initialized")

	return env, nil
}

// resolveDeviceID prefers an explicit override, then the host ID, then a
// name-based UUID over stable host facts, then a random UUID.
func resolveDeviceID(override string, info HostInfo) string {
	if id := strings.TrimSpace(override); id != "" {
		return id
	}
	if info.HostID != "" {
		return info.HostID
	}

	seed := strings.Join([]string{info.Hostname, info.Platform, info.KernelArch}, "|")
	if strings.Trim(seed, "|") != "" {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
	}
	return uuid.NewString()
}

// OSVersion returns the platform version, falling back to the kernel version.
func (e *Env) OSVersion() string {
	if e.info.PlatformVersion != "" {
		return e.info.PlatformVersion
	}
	if e.info.KernelVersion != "" {
		return e.info.KernelVersion
	}
	return unknownVersion
}

func (e *Env) SDKVersion() int {
	return e.apiLevel
}

func (e *Env) DeviceID() string {
	return e.deviceID
}

func (e *Env) Settings() Settings {
	return e.settings
}

// HostErr reports why the host probe failed. It matches common.ErrUnavailable.
func (e *Env) HostErr() error {
	return e.hostErr
}

// Host returns the probed host facts.
func (e *Env) Host() HostInfo {
	return e.info
}
