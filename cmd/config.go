package cmd

import (
	"fmt"
	"io"
	"os"

	"todone/internal"
)

// InitConfigCommand handles --init-config. A missing config file is created
// with the defaults; an existing one is printed unchanged.
func InitConfigCommand(out io.Writer) error {
	path, err := internal.UserConfigPath()
	if err != nil {
		return fmt.Errorf("failed to locate config: %w", err)
	}

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		fmt.Fprintf(out, "%s already exists:\n\n%s", path, content)
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := internal.SaveDefaultConfig(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(out, "Wrote default config to %s\n", path)
	return nil
}
