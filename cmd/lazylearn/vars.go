package cli

import (
	"github.com/spf13/cobra"

	"github.com/lazylearn/desktop/internal/config"
)

// AppVersion is stamped at build time via -ldflags.
var AppVersion = "dev"

// Shared CLI flags
var (
	cfgFile string
	verbose bool
)

// ShellConfig holds the loaded configuration (set by main)
var ShellConfig *config.Config

// SetupRootCmd configures the root command
func SetupRootCmd(c *config.Config) *cobra.Command {
	ShellConfig = c

	rootCmd := &cobra.Command{
		Use:   "lazylearn",
		Short: "Lazy Learn - study material assistant",
		Long: `Lazy Learn organizes lecture materials and generates study aids.

Just type 'lazylearn' to open the main window. The bundled Python backend
is started automatically and stopped when the window closes.`,
		Version: AppVersion,
		Run: func(cmd *cobra.Command, args []string) {
			RunDesktop()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file overriding the embedded defaults")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return rootCmd
}
