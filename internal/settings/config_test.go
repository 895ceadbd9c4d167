package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tacnotepad")
	lggr := zaptest.NewLogger(t).Sugar()

	conf, err := LoadConfig(dir, lggr)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), conf)
	assert.FileExists(t, filepath.Join(dir, configFile))

	again, err := LoadConfig(dir, lggr)
	require.NoError(t, err)
	assert.Equal(t, conf, again)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	data := "eraser_color = \"#fdf6e3\"\nmax_width = 40.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFile), []byte(data), 0644))

	conf, err := LoadConfig(dir, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	assert.Equal(t, "#fdf6e3", conf.EraserColor)
	assert.Equal(t, 40.0, conf.MaxWidth)
	assert.Equal(t, DefaultConfig().Palette, conf.Palette)
}

func TestLoadConfigRejectsBadFiles(t *testing.T) {
	tests := map[string]string{
		"syntax":      "eraser_color = ",
		"bad color":   "eraser_color = \"chalk\"",
		"width range": "min_width = 10.0\nmax_width = 5.0",
		"port":        "share_port = 70000",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, configFile), []byte(data), 0644))

			conf, err := LoadConfig(dir, zaptest.NewLogger(t).Sugar())
			assert.Error(t, err)
			assert.Equal(t, DefaultConfig(), conf)
		})
	}
}

func TestConfigDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "tacnotepad"), ConfigDir())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/pilot")
	assert.Equal(t, filepath.Join("/home/pilot", ".config", "tacnotepad"), ConfigDir())
}

func TestClampWidth(t *testing.T) {
	conf := DefaultConfig()
	assert.Equal(t, conf.MinWidth, conf.ClampWidth(0))
	assert.Equal(t, 7.0, conf.ClampWidth(7))
	assert.Equal(t, conf.MaxWidth, conf.ClampWidth(500))
}
