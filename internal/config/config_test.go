package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config lookup at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APPDATA", dir)
	t.Setenv("PCCARE_CONFIG", "")
	t.Setenv("PCCARE_LOG_LEVEL", "")
	os.Unsetenv("PCCARE_LOG_LEVEL")
	return dir
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, time.Second, cfg.UI.InvalidPause)
	assert.True(t, cfg.UI.ClearScreen)
	assert.Empty(t, cfg.Paths.HelldiversDir)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	content := `
[log]
level = "debug"

[ui]
invalid_pause = "250ms"
clear_screen = false

[paths]
helldivers_dir = "D:\\Games\\HD2"
extra_temp_dirs = ["D:\\Scratch"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.InvalidPause)
	assert.False(t, cfg.UI.ClearScreen)
	assert.Equal(t, `D:\Games\HD2`, cfg.Paths.HelldiversDir)
	assert.Equal(t, []string{`D:\Scratch`}, cfg.Paths.ExtraTempDirs)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("PCCARE_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Defaults()))

	bad := Defaults()
	bad.Log.Level = "verbose"
	assert.Error(t, Validate(bad))

	bad = Defaults()
	bad.UI.InvalidPause = -time.Second
	assert.Error(t, Validate(bad))

	zero := Defaults()
	zero.UI.InvalidPause = 0
	assert.NoError(t, Validate(zero))
}

func TestValidate_ExtraTempDirs(t *testing.T) {
	win := t.TempDir()
	t.Setenv("SystemRoot", win)

	cases := []struct {
		name string
		dir  string
		ok   bool
	}{
		{"scratch dir", t.TempDir(), true},
		{"windows temp", filepath.Join(win, "Temp"), true},
		{"below windows temp", filepath.Join(win, "Temp", "build"), true},
		{"system32 child", filepath.Join(win, "System32", "drivers"), false},
		{"windows dir", win, false},
		{"parent of windows", filepath.Dir(win), false},
		{"blank", "  ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Defaults()
			c.Paths.ExtraTempDirs = []string{tc.dir}
			err := Validate(c)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, "paths.extra_temp_dirs")
			}
		})
	}
}
