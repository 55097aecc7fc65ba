package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configPath = ""
		debug = false
	})
	_, err := rootCmd.ExecuteC()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pccare 1.2.3 (abc123) built 2026-01-01")
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, err := execute(t, "bogus")
	assert.Error(t, err)
}

func TestSetup_MissingExplicitConfig(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "nope.toml")
	t.Cleanup(func() { configPath = "" })

	_, _, err := setup()
	assert.Error(t, err)
}

func TestCompletion_PowerShellDefault(t *testing.T) {
	out, err := execute(t, "completion")
	require.NoError(t, err)
	assert.Contains(t, out, "Register-ArgumentCompleter")
}

func TestMonitor_RejectsBadRefresh(t *testing.T) {
	t.Cleanup(func() { monitorRefresh = 1 })
	_, err := execute(t, "monitor", "--refresh", "0")
	assert.ErrorContains(t, err, "invalid --refresh")
}
