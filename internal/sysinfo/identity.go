package sysinfo

import (
	"context"
	"strings"

	"github.com/CtrlAltSam/NecoMind/internal/gpu"
)

// CaptureIdentity runs every identity lookup once. Lookups that fail or come
// back blank are replaced with Unknown (or gpu.NotFound for the GPU), so the
// result never has an empty field.
func CaptureIdentity(ctx context.Context, src IdentitySource, resolver gpu.Resolver, cols, rows int) Identity {
	id := Identity{
		OS:      orUnknown(src.OSName()),
		Host:    orUnknown(src.HostName()),
		Kernel:  orUnknown(src.KernelVersion()),
		CPU:     orUnknown(src.CPUBrand()),
		GPU:     gpu.NotFound,
		Columns: cols,
		Rows:    rows,
	}

	if uptime, err := src.Uptime(); err == nil && uptime > 0 {
		id.Uptime = uptime
	}

	if resolver != nil {
		if name := strings.TrimSpace(resolver.Resolve(ctx)); name != "" {
			id.GPU = name
		}
	}

	return id
}

func orUnknown(value string, err error) string {
	value = strings.TrimSpace(value)
	if err != nil || value == "" {
		return Unknown
	}
	return value
}
