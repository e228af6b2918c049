package sysinfo

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const header = "\n===== SYSTEM INFO =====\n"

const bytesPerMB = 1024 * 1024

// Report is a point-in-time snapshot of the host.
type Report struct {
	Platform      string
	OSType        string
	Architecture  string
	Hostname      string
	TotalRAMBytes uint64
	FreeRAMBytes  uint64
	UptimeSeconds int64
	CPUCores      int
	User          string
	HomeDir       string
}

// Field is one rendered line of a report.
type Field struct {
	Key   string
	Value string
}

// platformStats holds the values only the operating system can provide.
type platformStats struct {
	osType   string
	totalRAM uint64
	freeRAM  uint64
	uptime   int64
}

// readStats is swapped out in tests.
var readStats = readPlatformStats

// Collect gathers a report for the current host. It always returns a usable
// report: hostname, user and home directory are empty when unreadable, and
// when the operating system stats fail the memory and uptime fields stay zero
// while the wrapped error is returned next to the report.
func Collect() (Report, error) {
	stats, statsErr := readStats()
	if statsErr != nil {
		stats = platformStats{osType: runtime.GOOS}
		statsErr = errors.Wrap(statsErr, "read platform stats")
	}

	hostname, _ := os.Hostname()
	home, _ := os.UserHomeDir()

	username := ""
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	return Report{
		Platform:      runtime.GOOS,
		OSType:        stats.osType,
		Architecture:  runtime.GOARCH,
		Hostname:      hostname,
		TotalRAMBytes: stats.totalRAM,
		FreeRAMBytes:  stats.freeRAM,
		UptimeSeconds: stats.uptime,
		CPUCores:      runtime.NumCPU(),
		User:          username,
		HomeDir:       home,
	}, statsErr
}

// Fields returns the report lines in display order.
func (r Report) Fields() []Field {
	return []Field{
		{Key: "Platform", Value: r.Platform},
		{Key: "OS_Type", Value: r.OSType},
		{Key: "Architecture", Value: r.Architecture},
		{Key: "Hostname", Value: r.Hostname},
		{Key: "Total_RAM_MB", Value: toMB(r.TotalRAMBytes)},
		{Key: "Free_RAM_MB", Value: toMB(r.FreeRAMBytes)},
		{Key: "Uptime_Seconds", Value: fmt.Sprintf("%d", r.UptimeSeconds)},
		{Key: "CPU_Cores", Value: fmt.Sprintf("%d", r.CPUCores)},
		{Key: "User", Value: r.User},
		{Key: "Home_Dir", Value: r.HomeDir},
	}
}

// Format renders the report as the block appended to the log.
func (r Report) Format() string {
	var b strings.Builder
	b.WriteString(header)
	for _, f := range r.Fields() {
		fmt.Fprintf(&b, "%s: %s\n", f.Key, f.Value)
	}
	return b.String()
}

// AppendLog appends the formatted report to path, creating it if needed.
func AppendLog(fs afero.Fs, path string, r Report) error {
	f, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}

	if _, err := f.WriteString(r.Format()); err != nil {
		f.Close()
		return errors.Wrapf(err, "append to %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

func toMB(b uint64) string {
	return fmt.Sprintf("%.2f", float64(b)/bytesPerMB)
}
