package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config represents the application configuration
type Config struct {
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig contains settings for the two-pane view
type DisplayConfig struct {
	TodoBullet  string `toml:"todo_bullet"`
	DoneBullet  string `toml:"done_bullet"`
	ShowNumbers bool   `toml:"show_numbers"`
}

// LogConfig controls the debug log. An empty File disables logging.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	opts := DefaultRenderOptions()
	return &Config{
		Display: DisplayConfig{
			TodoBullet:  opts.TodoBullet,
			DoneBullet:  opts.DoneBullet,
			ShowNumbers: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// UserConfigPath returns ~/.config/todone/config.toml
func UserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "todone", "config.toml"), nil
}

// SaveDefaultConfig writes a commented default config to path. An existing
// file is left alone.
func SaveDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.WriteString("# todone configuration file\n\n"); err != nil {
		return err
	}
	return toml.NewEncoder(file).Encode(DefaultConfig())
}

// LoadConfig loads configuration from the user config file or returns the
// defaults. A broken config file still yields the defaults, together with the
// error so the caller can report it.
func LoadConfig() (*Config, error) {
	configPath, err := UserConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile is LoadConfig for an explicit path.
func LoadConfigFile(configPath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	if config.Log.Level != "" {
		if _, err := log.ParseLevel(config.Log.Level); err != nil {
			return DefaultConfig(), fmt.Errorf("invalid log level %q in %s: %w", config.Log.Level, configPath, err)
		}
	}

	// Empty bullets would glue the text to the pane edge.
	if config.Display.TodoBullet == "" {
		config.Display.TodoBullet = DefaultConfig().Display.TodoBullet
	}
	if config.Display.DoneBullet == "" {
		config.Display.DoneBullet = DefaultConfig().Display.DoneBullet
	}

	return config, nil
}

// RenderOptions builds the render settings from the display section.
func (c *Config) RenderOptions() RenderOptions {
	opts := DefaultRenderOptions()
	opts.TodoBullet = c.Display.TodoBullet
	opts.DoneBullet = c.Display.DoneBullet
	return opts
}
