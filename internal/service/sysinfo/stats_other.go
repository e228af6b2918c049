//go:build !linux

package sysinfo

import "runtime"

// Memory and uptime are only read on Linux; elsewhere they report zero.
func readPlatformStats() (platformStats, error) {
	return platformStats{osType: runtime.GOOS}, nil
}
