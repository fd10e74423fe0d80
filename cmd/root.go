package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the single command: todone [path].
func NewRootCmd() *cobra.Command {
	var initConfig bool

	root := &cobra.Command{
		Use:   "todone [path]",
		Short: "Two-list todo / done tracker for the terminal",
		Long: strings.TrimSpace(`
todone keeps a todo list and a done list side by side in the terminal.

The optional path is the document file, or a directory holding a file
named TODO. Without a path ~/TODO is used.

Press F1 inside the program for the key reference. Settings are read from
~/.config/todone/config.toml; --init-config writes a default one.`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initConfig {
				return InitConfigCommand(cmd.OutOrStdout())
			}

			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return InteractiveCommand(path)
		},
	}

	root.Flags().BoolVar(&initConfig, "init-config", false, "create the config file, or show it if it exists")
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
