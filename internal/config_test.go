package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileMissing(t *testing.T) {
	config, err := LoadConfigFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[display]
todo_bullet = "*"
done_bullet = "✓"
show_numbers = true

[log]
file = "/tmp/todone.log"
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, "*", config.Display.TodoBullet)
	require.Equal(t, "✓", config.Display.DoneBullet)
	require.True(t, config.Display.ShowNumbers)
	require.Equal(t, "/tmp/todone.log", config.Log.File)
	require.Equal(t, "debug", config.Log.Level)

	opts := config.RenderOptions()
	require.Equal(t, "*", opts.TodoBullet)
	require.Equal(t, "✓", opts.DoneBullet)
}

func TestLoadConfigFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\ntodo_bullet = \"\"\nshow_numbers = true\n"), 0644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, "-", config.Display.TodoBullet, "empty bullet falls back to the default")
	require.Equal(t, "x", config.Display.DoneBullet)
	require.True(t, config.Display.ShowNumbers)
	require.Equal(t, "info", config.Log.Level)
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display\nshow_numbers = maybe"), 0644))

	config, err := LoadConfigFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), path)
	require.Equal(t, DefaultConfig(), config, "defaults are still usable")
}

func TestLoadConfigUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "todone")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[display]\nshow_numbers = true\n"), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, config.Display.ShowNumbers)
}

func TestSaveDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todone", "config.toml")

	require.NoError(t, SaveDefaultConfig(path))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)

	require.NoError(t, os.WriteFile(path, []byte("[display]\nshow_numbers = true\n"), 0644))
	require.NoError(t, SaveDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[display]\nshow_numbers = true\n", string(data), "existing config is kept")
}

func TestLoadConfigFileInvalidLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\nshow_numbers = true\n\n[log]\nlevel = \"verbose\"\n"), 0644))

	config, err := LoadConfigFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "verbose")
	require.Equal(t, DefaultConfig(), config)

	_, closeLog, err := NewLogger(config.Log)
	require.NoError(t, err, "the fallback config always yields a logger")
	require.NoError(t, closeLog())
}
