package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/dc25-uiux/uxai/internal/app"
	"github.com/dc25-uiux/uxai/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The returned closer releases
// the history database and must be closed once the command finishes.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, io.Closer, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, nil, err
	}
	return newRootCommand(container), container, nil
}

func newRootCommand(container *app.Container) *cobra.Command {
	recommendCmd := commands.NewRecommendCommand(container)

	root := &cobra.Command{
		Use:   "uxai [description]",
		Short: "uxai - UI component recommendation assistant",
		Long:  "uxai recommends UI library components for a free-text description using OpenRouter, KiloCode or a local rule engine.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			// the bare form uses recommend's flag defaults
			recommendCmd.SetContext(cmd.Context())
			recommendCmd.SetOut(cmd.OutOrStdout())
			return recommendCmd.RunE(recommendCmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(recommendCmd)
	root.AddCommand(commands.NewAnalyzeCommand(container))
	root.AddCommand(commands.NewGenerateCommand(container))
	root.AddCommand(commands.NewImproveCommand(container))
	root.AddCommand(commands.NewAdviseCommand(container))
	root.AddCommand(commands.NewComponentsCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewServeCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}
