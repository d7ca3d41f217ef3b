package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/lolbunny/internal/core/ports"
	"github.com/AntonioJCosta/lolbunny/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the 'resolve' subcommand.
func NewResolveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <text...>",
		Short: "Print the URL a piece of input redirects to.",
		Long: `Resolves the input exactly as the server would and prints the destination.
All arguments are joined with single spaces, so quoting is optional.`,
		Example: `  lolbunny resolve jira FOO-123
  lolbunny resolve --explain "sg rec foo.*bar"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveCmd(cmd, args, a.svc)
		},
	}

	cmd.Flags().BoolP("explain", "e", false, "Show how the input was parsed and which shortcut matched.")

	return cmd
}

func runResolveCmd(
	cmd *cobra.Command,
	args []string,
	svc ports.RedirectService,
) error {
	explain, _ := cmd.Flags().GetBool("explain")
	out := cmd.OutOrStdout()
	raw := strings.Join(args, " ")

	if !explain {
		fmt.Fprintln(out, svc.Resolve(raw))
		return nil
	}

	printResolution(out, svc.Explain(raw))
	return nil
}

func printResolution(out io.Writer, res ports.Resolution) {
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("command:  %q", res.Parsed.Command)))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("argument: %q", res.Parsed.Argument)))
	if res.Matched {
		fmt.Fprintf(out, "%s %s (%s)\n",
			ui.InfoColor("shortcut:"),
			ui.TokenColor(res.Entry.Token),
			ui.KindColor(res.Entry.Hop.Kind.String()))
	} else {
		fmt.Fprintln(out, ui.WarningColor("shortcut: none, using fallback search"))
	}
	fmt.Fprintf(out, "%s %s\n", ui.InfoColor("url:"), ui.URLColor(res.Destination))
}
