//go:build linux

package sysinfo

import "golang.org/x/sys/unix"

func readPlatformStats() (platformStats, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return platformStats{}, err
	}

	osType := "Linux"
	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		osType = unix.ByteSliceToString(uts.Sysname[:])
	}

	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}

	return platformStats{
		osType:   osType,
		totalRAM: uint64(info.Totalram) * unit,
		freeRAM:  uint64(info.Freeram) * unit,
		uptime:   int64(info.Uptime),
	}, nil
}
