package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nulzo/agent-models/internal/cli"
	"github.com/nulzo/agent-models/internal/core/services"
	"github.com/nulzo/agent-models/internal/platform/logger"
	"github.com/nulzo/agent-models/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrReported is returned once a command has already printed its failure.
var ErrReported = errors.New("error already reported")

const (
	outputText = "text"
	outputJSON = "json"
)

type options struct {
	version      string
	outputFormat string
	debug        bool
	noColor      bool
}

// NewRootCmd builds the agentmodels command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{version: version}

	root := &cobra.Command{
		Use:   "agentmodels",
		Short: "Model alias and agent model registry",
		Long: `agentmodels resolves short model aliases to full model identifiers,
reports provider default models and validates agent model names.

Examples:
  agentmodels resolve opus                 # claude-opus-4-5-20251101
  agentmodels default claude               # default model for a provider
  agentmodels validate GLM-4.7 sonnet      # check agent model names
  agentmodels list --output json           # dump every table
  agentmodels serve                        # run the HTTP API`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				cli.SetEnabled(false)
			}
			switch opts.outputFormat {
			case outputText, outputJSON:
				return nil
			default:
				return fmt.Errorf("invalid output format %q (text, json)", opts.outputFormat)
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.outputFormat, "output", "o", outputText,
		"Output format (text, json)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"Log lookups to stderr")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false,
		"Disable colored output")

	root.AddCommand(
		newResolveCmd(opts),
		newDefaultCmd(opts),
		newValidateCmd(opts),
		newListCmd(opts),
		newServeCmd(opts),
		newVersionCmd(opts),
	)

	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(version string) int {
	if err := NewRootCmd(version).Execute(); err != nil {
		if !errors.Is(err, ErrReported) {
			fmt.Fprintf(os.Stderr, "%s %v\n", cli.CrossMark(), err)
		}
		return 1
	}
	return 0
}

// registry returns a lookup service for one-shot CLI commands.
func (o *options) registry(cmd *cobra.Command) *services.RegistryService {
	log := zap.NewNop()
	if o.debug {
		cfg := logger.DefaultConfig()
		cfg.Format = "console"
		log = logger.New(cfg, zapcore.AddSync(cmd.ErrOrStderr()), zapcore.DebugLevel)
	}
	return services.NewRegistryService(log)
}

func cliContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, store.ContextKeySource, "cli")
}
