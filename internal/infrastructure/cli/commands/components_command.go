package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dc25-uiux/uxai/internal/app"
	"github.com/dc25-uiux/uxai/internal/infrastructure/cli/helpers"
)

// NewComponentsCommand creates the components command with all subcommands
func NewComponentsCommand(container *app.Container) *cobra.Command {
	componentsCmd := &cobra.Command{
		Use:   "components",
		Short: "Manage the available component whitelist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listComponents(cmd.OutOrStdout(), container)
		},
	}

	componentsCmd.AddCommand(
		newComponentsListCommand(container),
		newComponentsAddCommand(container),
		newComponentsRemoveCommand(container),
	)

	return componentsCmd
}

func newComponentsListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available components",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listComponents(cmd.OutOrStdout(), container)
		},
	}
}

func newComponentsAddCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>...",
		Short: "Add components to the whitelist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateComponents(cmd.OutOrStdout(), container, args, true)
		},
	}
}

func newComponentsRemoveCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>...",
		Short: "Remove components from the whitelist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateComponents(cmd.OutOrStdout(), container, args, false)
		},
	}
}

// listComponents prints the whitelist the assistant currently validates against
func listComponents(out io.Writer, container *app.Container) error {
	if container.Assistant == nil {
		return errors.New(ErrAssistantUnavailable)
	}
	components := container.Assistant.AvailableComponents()
	if len(components) == 0 {
		fmt.Fprintln(out, MsgComponentsEmpty)
		return nil
	}
	for _, c := range components {
		fmt.Fprintln(out, c)
	}
	return nil
}

// updateComponents persists the change and applies it to the running assistant
func updateComponents(out io.Writer, container *app.Container, names []string, add bool) error {
	cfg := container.Config
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return errors.New(ErrComponentEmpty)
		}
		var err error
		if add {
			err = cfg.AddComponent(name)
		} else {
			err = cfg.RemoveComponent(name)
		}
		if err != nil {
			return err
		}
	}

	if err := helpers.SaveConfigWithValidation(container, cfg); err != nil {
		return err
	}
	container.Config = cfg
	if container.Assistant != nil {
		container.Assistant.UpdateAvailableComponents(cfg.EffectiveComponents())
	}

	fmt.Fprintf(out, "%d components available\n", len(cfg.EffectiveComponents()))
	return nil
}
