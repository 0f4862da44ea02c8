package commands

import (
	"fmt"

	"github.com/nulzo/agent-models/internal/cli"
	"github.com/nulzo/agent-models/pkg/api"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate MODEL...",
		Short: "Check whether values are accepted agent models",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := opts.registry(cmd)
			ctx := cliContext(cmd)

			results := make([]api.ValidateResponse, 0, len(args))
			invalid := 0
			for _, value := range args {
				resp := api.ValidateResponse{Model: value}
				if m, err := registry.ParseAgentModel(ctx, value); err == nil {
					resp.Valid = true
					resp.Aliased = m.IsAlias()
					resp.Canonical = m.Canonical()
				} else {
					invalid++
				}
				results = append(results, resp)
			}

			if opts.outputFormat == outputJSON {
				if err := cli.PrettyPrint(cmd.OutOrStdout(), api.NewList(results)); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				for _, r := range results {
					switch {
					case !r.Valid:
						fmt.Fprintf(out, "%s %s\n", cli.CrossMark(), r.Model)
					case r.Aliased:
						fmt.Fprintf(out, "%s %s %s %s\n", cli.CheckMark(), r.Model, cli.Arrow(), r.Canonical)
					default:
						fmt.Fprintf(out, "%s %s\n", cli.CheckMark(), r.Model)
					}
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d values are not agent models", invalid, len(args))
			}
			return nil
		},
	}
}
