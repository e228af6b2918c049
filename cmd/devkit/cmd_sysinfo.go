package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhouzirui/shopfront/backend/internal/service/sysinfo"
)

var (
	sysinfoLogPath string
	sysinfoNoLog   bool
)

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Print host metrics and append them to a log file",
	Args:  cobra.NoArgs,
	RunE:  runSysinfo,
}

func init() {
	sysinfoCmd.Flags().StringVar(&sysinfoLogPath, "log", "", "log file to append to (default $SYSINFO_LOG_PATH or system-log.txt)")
	sysinfoCmd.Flags().BoolVar(&sysinfoNoLog, "no-log", false, "print only, do not append to the log file")
}

func runSysinfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	report, err := sysinfo.Collect()
	if err != nil {
		logger.Warn("system stats unavailable, reporting zero memory and uptime", zap.Error(err))
	}
	fmt.Fprintln(out, report.Format())

	if sysinfoNoLog {
		return nil
	}

	path := sysinfoLogPath
	if path == "" {
		path = cfg.SysInfo.LogPath
	}
	if err := sysinfo.AppendLog(fs, path, report); err != nil {
		return err
	}

	logger.Debug("system info logged", zap.String("path", path))
	fmt.Fprintf(out, "✅ System info logged to %s\n", color.New(color.Bold).Sprint(path))
	return nil
}
