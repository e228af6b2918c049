package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zhouzirui/shopfront/backend/internal/config"
)

func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	logger = zap.NewNop()
	cfg = &config.Config{SysInfo: config.SysInfoConfig{LogPath: "/logs/system-log.txt"}}

	prevFS := fs
	fs = afero.NewMemMapFs()
	t.Cleanup(func() { fs = prevFS })

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd, out
}

func TestRunScaffold(t *testing.T) {
	cmd, out := setup(t)
	scaffoldDir = "/projects"
	defer func() { scaffoldDir = "." }()

	require.NoError(t, runScaffold(cmd, []string{"landing"}))
	assert.Contains(t, out.String(), "created")
	assert.Contains(t, out.String(), "index.html, style.css, script.js")

	for _, f := range []string{"index.html", "style.css", "script.js"} {
		ok, err := afero.Exists(fs, filepath.Join("/projects/landing", f))
		require.NoError(t, err)
		assert.True(t, ok, f)
	}

	// Second run reuses the folder.
	out.Reset()
	require.NoError(t, runScaffold(cmd, []string{"landing"}))
	assert.Contains(t, out.String(), "already exists")
}

func TestRunScaffoldRejectsEmptyName(t *testing.T) {
	cmd, _ := setup(t)
	assert.Error(t, runScaffold(cmd, []string{" "}))
}

func TestRunSysinfoAppendsToConfiguredLog(t *testing.T) {
	cmd, out := setup(t)

	require.NoError(t, runSysinfo(cmd, nil))
	require.NoError(t, runSysinfo(cmd, nil))

	assert.Contains(t, out.String(), "===== SYSTEM INFO =====")
	assert.Contains(t, out.String(), "System info logged to")

	data, err := afero.ReadFile(fs, "/logs/system-log.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "===== SYSTEM INFO ====="))
}

func TestRunSysinfoNoLog(t *testing.T) {
	cmd, out := setup(t)
	sysinfoNoLog = true
	defer func() { sysinfoNoLog = false }()

	require.NoError(t, runSysinfo(cmd, nil))
	assert.Contains(t, out.String(), "Platform: ")

	ok, err := afero.Exists(fs, "/logs/system-log.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRootRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"scaffold", "sysinfo", "pages", "whoami"} {
		assert.True(t, names[want], want)
	}
}
