package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nulzo/agent-models/internal/cli"
	"github.com/nulzo/agent-models/pkg/models"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve ALIAS...",
		Short: "Resolve model aliases to full identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := opts.registry(cmd)
			ctx := cliContext(cmd)

			resolved := make(map[string]string, len(args))
			failed := false
			for _, alias := range args {
				id, err := registry.ResolveAlias(ctx, alias)
				if err != nil {
					printNotFound(cmd.ErrOrStderr(), err)
					failed = true
					continue
				}
				resolved[alias] = id
			}

			if opts.outputFormat == outputJSON {
				if err := cli.PrettyPrint(cmd.OutOrStdout(), resolved); err != nil {
					return err
				}
			} else {
				for _, alias := range args {
					if id, ok := resolved[alias]; ok {
						fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", alias, cli.Arrow(), id)
					}
				}
			}

			if failed {
				return ErrReported
			}
			return nil
		},
	}
}

// printNotFound reports a failed lookup together with the accepted keys.
func printNotFound(w io.Writer, err error) {
	var nf *models.NotFoundError
	if !errors.As(err, &nf) {
		fmt.Fprintf(w, "%s %v\n", cli.CrossMark(), err)
		return
	}

	fmt.Fprintf(w, "%s %s\n", cli.CrossMark(), cli.Stylize(fmt.Sprintf("unknown %s %q", nf.Kind, nf.Key), cli.Red))
	fmt.Fprintf(w, "  valid: %s\n", strings.Join(nf.Valid, ", "))
}
