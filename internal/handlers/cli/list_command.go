package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/lolbunny/internal/core/domain/hop"
	"github.com/AntonioJCosta/lolbunny/internal/core/ports"
	"github.com/AntonioJCosta/lolbunny/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available shortcuts.",
		Long:  `Displays every shortcut in help page order with an example destination.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, a.svc)
		},
	}

	cmd.Flags().StringP("kind", "k", "", "Only list shortcuts of this kind (e.g. basic, jira, sourcegraph).")

	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	cmd *cobra.Command,
	_ []string,
	svc ports.RedirectService,
) error {
	out := cmd.OutOrStdout()
	kindFilter, _ := cmd.Flags().GetString("kind")

	var wantKind hop.Kind
	if kindFilter != "" {
		k, err := hop.ParseKind(kindFilter)
		if err != nil {
			return fmt.Errorf("invalid --kind: %w", err)
		}
		wantKind = k
	}

	var rows [][]string
	for _, ex := range svc.Examples() {
		if kindFilter != "" && ex.Entry.Hop.Kind != wantKind {
			continue
		}
		rows = append(rows, []string{ex.Entry.Token, ex.Entry.Hop.Kind.String(), ex.Entry.Help, ex.ExampleURL})
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No shortcuts found."))
		return nil
	}

	header := "Shortcuts:"
	if kindFilter != "" {
		header = fmt.Sprintf("Shortcuts of kind %s:", strings.ToLower(kindFilter))
	}
	fmt.Fprintln(out, ui.HeaderColor(header))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Shortcut", "Kind", "Description", "Example"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.AppendBulk(rows)
	table.Render()
	return nil
}
