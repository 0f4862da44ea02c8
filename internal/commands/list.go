package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nulzo/agent-models/internal/cli"
	"github.com/nulzo/agent-models/pkg/api"
	"github.com/spf13/cobra"
)

const (
	tableAliases     = "aliases"
	tableProviders   = "providers"
	tableAgentModels = "agent-models"
	tableAll         = "all"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "list [aliases|providers|agent-models|all]",
		Short:     "Print the registry tables",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{tableAliases, tableProviders, tableAgentModels, tableAll},
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tableAll
			if len(args) == 1 {
				table = args[0]
			}

			catalog, err := opts.registry(cmd).Catalog(cliContext(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.outputFormat == outputJSON {
				return cli.PrettyPrint(out, selectTable(catalog, table))
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			if table == tableAliases || table == tableAll {
				writeAliases(w, catalog.Aliases)
			}
			if table == tableProviders || table == tableAll {
				writeDefaults(w, catalog.Defaults)
			}
			if table == tableAgentModels || table == tableAll {
				writeAgentModels(w, catalog.AgentModels)
			}
			return w.Flush()
		},
	}
}

func selectTable(catalog *api.Catalog, table string) interface{} {
	switch table {
	case tableAliases:
		return api.NewList(catalog.Aliases)
	case tableProviders:
		return api.NewList(catalog.Defaults)
	case tableAgentModels:
		return api.NewList(catalog.AgentModels)
	default:
		return catalog
	}
}

func writeAliases(w io.Writer, entries []api.AliasEntry) {
	fmt.Fprintln(w, "ALIAS\tMODEL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Alias, e.Model)
	}
	fmt.Fprintln(w)
}

func writeDefaults(w io.Writer, entries []api.DefaultModelEntry) {
	fmt.Fprintln(w, "PROVIDER\tDEFAULT MODEL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Provider, e.Model)
	}
	fmt.Fprintln(w)
}

func writeAgentModels(w io.Writer, entries []api.AgentModel) {
	fmt.Fprintln(w, "AGENT MODEL\tCANONICAL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.ID, e.Canonical)
	}
	fmt.Fprintln(w)
}
