package sysinfo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSource struct {
	cpu                 float64
	memUsed, memTotal   uint64
	swapUsed, swapTotal uint64
}

func (s *stubSource) RefreshCPU() error            { return nil }
func (s *stubSource) RefreshMemory() error         { return nil }
func (s *stubSource) CPUUsage() float64            { return s.cpu }
func (s *stubSource) Memory() (used, total uint64) { return s.memUsed, s.memTotal }
func (s *stubSource) Swap() (used, total uint64)   { return s.swapUsed, s.swapTotal }

func TestSnapshot(t *testing.T) {
	src := &stubSource{cpu: 12.5, memUsed: 1, memTotal: 2, swapUsed: 3, swapTotal: 4}

	assert.Equal(t, Usage{
		CPUPercent: 12.5,
		MemUsed:    1,
		MemTotal:   2,
		SwapUsed:   3,
		SwapTotal:  4,
	}, Snapshot(src))
}

func TestHostSource_BeforeRefresh(t *testing.T) {
	s := NewHostSource(context.Background())

	used, total := s.Memory()
	assert.Zero(t, used)
	assert.Zero(t, total)
	assert.Zero(t, s.CPUUsage())
	assert.Equal(t, 0, Snapshot(s).SwapPercent())
}

func TestHostSource_ImplementsInterfaces(t *testing.T) {
	var _ Source = (*HostSource)(nil)
	var _ IdentitySource = (*HostSource)(nil)
}
