package commands

import (
	"fmt"
	"runtime"

	"github.com/nulzo/agent-models/internal/cli"
	"github.com/spf13/cobra"
)

func newVersionCmd(opts *options) *cobra.Command {
	var check bool
	checker := cli.NewUpdateChecker()

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "agentmodels %s (%s %s/%s)\n",
				opts.version, runtime.Version(), runtime.GOOS, runtime.GOARCH)

			if check {
				checker.PrintUpdateNotice(cliContext(cmd), cmd.ErrOrStderr(), opts.version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")
	return cmd
}
