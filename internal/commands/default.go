package commands

import (
	"fmt"

	"github.com/nulzo/agent-models/internal/cli"
	"github.com/nulzo/agent-models/pkg/api"
	"github.com/nulzo/agent-models/pkg/models"
	"github.com/spf13/cobra"
)

func newDefaultCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "default [PROVIDER]",
		Short: "Show the default model of a provider",
		Long:  fmt.Sprintf("Show the default model of a provider (%q when omitted).", models.ProviderClaude),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := models.ProviderClaude
			if len(args) == 1 {
				provider = args[0]
			}

			id, err := opts.registry(cmd).DefaultModelFor(cliContext(cmd), provider)
			if err != nil {
				printNotFound(cmd.ErrOrStderr(), err)
				return ErrReported
			}

			if opts.outputFormat == outputJSON {
				return cli.PrettyPrint(cmd.OutOrStdout(), api.DefaultModelResponse{Provider: provider, Model: id})
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
