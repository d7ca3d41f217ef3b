package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHelpPageCommand creates the 'help-page' subcommand.
func NewHelpPageCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "help-page",
		Short: "Write the HTML help page to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.svc.HelpPage()
			if err != nil {
				return fmt.Errorf("could not render help page: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), page)
			return nil
		},
	}
}
