// Package cli provides the command-line interface for materialise.
package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/materialise/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with all subcommands attached.
// A fresh command tree is returned on every call so invocations do not
// share flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "materialise",
		Short: "A Material You colour scheme generator",
		Long: `Materialise derives a complete Material Design 3 colour scheme from a
wallpaper image or a literal seed colour.

The dominant colour is extracted perceptually (HCT / CAM16), expanded into
the full set of material roles across nine scheme variants, and paired with
a shell palette for desktop components.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}
