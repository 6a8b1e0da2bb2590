// Package cli provides the Cobra command structure for richmd.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/richmd/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root richmd command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "richmd",
		Short: "Compile Markdown into annotated plain text",
		Long: `richmd compiles Markdown into flattened plain text plus a list of
annotations describing how runs of that text should be presented.

It targets CommonMark and GitHub Flavored Markdown (GFM). Code blocks are
syntax highlighted, inline mentions are spliced into the output with their
positions remapped, and link destinations are tracked alongside the text
they decorate. The result can be emitted as plain text, styled terminal
output, JSON, or an annotation table.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
