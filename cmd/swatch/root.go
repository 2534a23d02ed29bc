package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/swatch/internal/app"
)

type rootFlags struct {
	configPath string
	prefsPath  string
	debug      bool
}

func (f *rootFlags) options() app.Options {
	return app.Options{ConfigPath: f.configPath, PrefsPath: f.prefsPath, Debug: f.debug}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "swatch",
		Short: "Edit terminal color preferences",
		Long: `swatch edits the color preferences in ~/.config/swatch/prefs.toml.

Run without arguments to open the interactive editor, or use the
subcommands to inspect and change single colors from scripts.`,
		Version: version,
		// errors are printed once by main
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.HasParent() {
				app.SetupCLILogging(cmd.ErrOrStderr(), flags.debug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.options())
		},
	}
	root.SetVersionTemplate(`{{printf "swatch version %s\n" .Version}}`)

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/swatch/config.toml)")
	root.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "preferences file, overrides prefs_path from the config")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newListCmd(flags),
		newGetCmd(flags),
		newSetCmd(flags),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of swatch",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "swatch version %s\n", version)
		},
	}
}
