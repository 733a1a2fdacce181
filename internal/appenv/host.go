package appenv

import (
	"context"

	"github.com/aleister1102/utilcode/internal/common"
	"github.com/shirou/gopsutil/v3/host"
)

// HostInfo is the subset of host facts the environment exposes.
type HostInfo struct {
	Hostname        string
	OS              string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	KernelArch      string
	HostID          string
}

// Prober reads facts about the machine the process runs on.
type Prober interface {
	Probe(ctx context.Context) (HostInfo, error)
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(ctx context.Context) (HostInfo, error)

func (f ProberFunc) Probe(ctx context.Context) (HostInfo, error) {
	return f(ctx)
}

// HostProber reads host facts through gopsutil.
type HostProber struct{}

func (HostProber) Probe(ctx context.Context) (HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostInfo{}, common.WrapError(err, "failed to read host info")
	}
	return HostInfo{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		KernelArch:      info.KernelArch,
		HostID:          info.HostID,
	}, nil
}
