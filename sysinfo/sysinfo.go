// Package sysinfo snapshots the serving host for the status API.
package sysinfo

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

type Status struct {
	Hostname     string `json:"hostname"`
	Platform     string `json:"platform"`
	Uptime       uint64 `json:"uptime_seconds"`
	UptimeString string `json:"uptime_string"`
}

// Collect reads the current host info. It is called per request; gopsutil
// caches nothing here, which is fine at status-poll rates.
func Collect() (Status, error) {
	info, err := host.Info()
	if err != nil {
		return Status{}, fmt.Errorf("read host info: %w", err)
	}

	platform := info.Platform
	if info.PlatformVersion != "" {
		platform += " " + info.PlatformVersion
	}

	return Status{
		Hostname:     info.Hostname,
		Platform:     platform,
		Uptime:       info.Uptime,
		UptimeString: FormatUptime(info.Uptime),
	}, nil
}

// FormatUptime renders seconds as "3d 4h", "4h 12m" or "12m", dropping units
// that would read as zero.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
