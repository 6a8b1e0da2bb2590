package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/richmd/pkg/highlight"
)

func newLanguagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List languages available for syntax highlighting",
		Long: `List the language names recognized by the syntax highlighter.
Any of these can be used as a code fence tag or with --code-lang.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range highlight.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return fmt.Errorf("write language list: %w", err)
				}
			}
			return nil
		},
	}

	return cmd
}
