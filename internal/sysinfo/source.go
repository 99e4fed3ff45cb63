package sysinfo

import (
	"context"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/CtrlAltSam/NecoMind/internal/errors"
)

// Source is the dynamic side of the metrics facility. Refresh methods take a
// new reading; the getters return whatever the last refresh stored.
type Source interface {
	RefreshCPU() error
	RefreshMemory() error
	CPUUsage() float64
	Memory() (used, total uint64)
	Swap() (used, total uint64)
}

// IdentitySource answers the one-shot identity queries.
type IdentitySource interface {
	OSName() (string, error)
	HostName() (string, error)
	KernelVersion() (string, error)
	Uptime() (time.Duration, error)
	CPUBrand() (string, error)
}

// Snapshot copies the source's current readings into a Usage value.
func Snapshot(s Source) Usage {
	u := Usage{CPUPercent: s.CPUUsage()}
	u.MemUsed, u.MemTotal = s.Memory()
	u.SwapUsed, u.SwapTotal = s.Swap()
	return u
}

// HostSource reads the local machine through gopsutil.
type HostSource struct {
	ctx context.Context

	cpuPercent float64
	memUsed    uint64
	memTotal   uint64
	swapUsed   uint64
	swapTotal  uint64

	info *host.InfoStat
}

// NewHostSource creates a source bound to ctx for every gopsutil call.
func NewHostSource(ctx context.Context) *HostSource {
	if ctx == nil {
		ctx = context.Background()
	}
	return &HostSource{ctx: ctx}
}

// RefreshCPU stores the global CPU utilization since the previous call.
func (s *HostSource) RefreshCPU() error {
	pct, err := cpu.PercentWithContext(s.ctx, 0, false)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't sample CPU usage", "")
	}
	if len(pct) == 0 {
		return errors.New(errors.ErrMetrics, "CPU usage sample was empty", "")
	}
	s.cpuPercent = pct[0]
	return nil
}

// RefreshMemory stores fresh memory and swap readings. Swap failures zero the
// swap reading so the gauge falls back to 0%.
func (s *HostSource) RefreshMemory() error {
	vm, err := mem.VirtualMemoryWithContext(s.ctx)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't sample memory usage", "")
	}
	s.memUsed, s.memTotal = vm.Used, vm.Total

	sw, err := mem.SwapMemoryWithContext(s.ctx)
	if err != nil {
		s.swapUsed, s.swapTotal = 0, 0
		return errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't sample swap usage", "")
	}
	s.swapUsed, s.swapTotal = sw.Used, sw.Total
	return nil
}

func (s *HostSource) CPUUsage() float64 { return s.cpuPercent }

func (s *HostSource) Memory() (used, total uint64) { return s.memUsed, s.memTotal }

func (s *HostSource) Swap() (used, total uint64) { return s.swapUsed, s.swapTotal }

// hostInfo caches host.Info; gopsutil may return a partially filled struct
// alongside an error, which is still worth using.
func (s *HostSource) hostInfo() (*host.InfoStat, error) {
	if s.info != nil {
		return s.info, nil
	}
	info, err := host.InfoWithContext(s.ctx)
	if info == nil {
		if err == nil {
			err = errors.New(errors.ErrMetrics, "Host info was empty", "")
		}
		return nil, err
	}
	s.info = info
	return info, nil
}

// OSName returns the platform and its version, e.g. "ubuntu 24.04".
func (s *HostSource) OSName() (string, error) {
	info, err := s.hostInfo()
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if name == "" {
		name = info.OS
	}
	return name, nil
}

func (s *HostSource) HostName() (string, error) {
	info, err := s.hostInfo()
	if err != nil {
		return "", err
	}
	return info.Hostname, nil
}

func (s *HostSource) KernelVersion() (string, error) {
	info, err := s.hostInfo()
	if err != nil {
		return "", err
	}
	return info.KernelVersion, nil
}

// Uptime is read fresh rather than from the cached host info.
func (s *HostSource) Uptime() (time.Duration, error) {
	secs, err := host.UptimeWithContext(s.ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

// CPUBrand prefers the OS-reported model name and falls back to the CPUID
// brand string.
func (s *HostSource) CPUBrand() (string, error) {
	infos, err := cpu.InfoWithContext(s.ctx)
	if err == nil && len(infos) > 0 {
		if name := strings.TrimSpace(infos[0].ModelName); name != "" {
			return name, nil
		}
	}
	if brand := strings.TrimSpace(cpuid.CPU.BrandName); brand != "" {
		return brand, nil
	}
	if err == nil {
		err = errors.New(errors.ErrMetrics, "CPU brand not reported", "")
	}
	return "", err
}
