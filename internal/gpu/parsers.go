package gpu

import (
	"strings"
)

// FirstLine returns the first non-blank line of output, trimmed.
func FirstLine(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// lspciClasses are the PCI class names that denote a display adapter.
var lspciClasses = []string{
	"vga compatible controller",
	"3d controller",
	"display controller",
}

// ParseLspci extracts the first display adapter from `lspci` output.
// Example line:
//
//	00:02.0 VGA compatible controller: Intel Corporation Alder Lake-P GT2 [Iris Xe Graphics] (rev 0c)
func ParseLspci(output string) string {
	for _, line := range strings.Split(output, "\n") {
		lower := strings.ToLower(line)
		for _, class := range lspciClasses {
			idx := strings.Index(lower, class+":")
			if idx < 0 {
				continue
			}
			name := strings.TrimSpace(line[idx+len(class)+1:])
			return trimRevision(name)
		}
	}
	return ""
}

// trimRevision drops a trailing "(rev xx)" marker.
func trimRevision(name string) string {
	if i := strings.LastIndex(name, " (rev "); i > 0 && strings.HasSuffix(name, ")") {
		return strings.TrimSpace(name[:i])
	}
	return name
}

// ParseSystemProfiler extracts the first "Chipset Model" value from
// `system_profiler SPDisplaysDataType` output.
func ParseSystemProfiler(output string) string {
	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "Chipset Model") {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// ParseNvidiaSMI handles `nvidia-smi --query-gpu=name --format=csv,noheader`.
// The tool prints errors on stdout when no driver is loaded, so those are discarded.
func ParseNvidiaSMI(output string) string {
	line := FirstLine(output)
	lower := strings.ToLower(line)
	if strings.Contains(lower, "no devices") ||
		strings.Contains(lower, "failed") ||
		strings.Contains(lower, "error") ||
		strings.Contains(lower, "not found") {
		return ""
	}
	return line
}
