package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dc25-uiux/uxai/internal/app"
	"github.com/dc25-uiux/uxai/internal/infrastructure/cli/helpers"
)

// NewAnalyzeCommand creates the analyze command
func NewAnalyzeCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file|->",
		Short: "Analyze component code (reads stdin when the argument is -)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Assistant == nil {
				return errors.New(ErrAssistantUnavailable)
			}
			code, err := readSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			result := withSpinner(func() string {
				return container.Assistant.AnalyzeCode(cmd.Context(), code)
			})
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

// NewGenerateCommand creates the generate command
func NewGenerateCommand(container *app.Container) *cobra.Command {
	var props []string

	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate a React component from a description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Assistant == nil {
				return errors.New(ErrAssistantUnavailable)
			}
			parsed, err := helpers.ParseProps(props)
			if err != nil {
				return err
			}
			description := strings.Join(args, " ")
			result := withSpinner(func() string {
				return container.Assistant.GenerateComponent(cmd.Context(), description, parsed)
			})
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&props, "prop", nil, "Component prop as key=value (repeatable)")
	return cmd
}

// NewImproveCommand creates the improve command
func NewImproveCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "improve <component>",
		Short: "Suggest improvements for a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Assistant == nil {
				return errors.New(ErrAssistantUnavailable)
			}
			suggestions := withSpinner(func() []string {
				return container.Assistant.SuggestImprovements(cmd.Context(), args[0])
			})
			helpers.RenderList(cmd.OutOrStdout(), suggestions)
			return nil
		},
	}
}

// NewAdviseCommand groups the KiloCode codebase helpers
func NewAdviseCommand(container *app.Container) *cobra.Command {
	adviseCmd := &cobra.Command{
		Use:   "advise",
		Short: "Codebase level advice from KiloCode",
	}

	adviseCmd.AddCommand(
		newAdviseCodebaseCommand(container),
		newAdviseRefactorCommand(container),
		newAdviseTestsCommand(container),
		newAdviseOptimizeCommand(container),
	)
	return adviseCmd
}

func newAdviseCodebaseCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "codebase [file|-]",
		Short: "Analyze a codebase summary, or the current project when omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Assistant == nil {
				return errors.New(ErrAssistantUnavailable)
			}
			var codebase string
			if len(args) == 0 {
				snapshot, err := inspectProject(cmd, container, "")
				if err != nil {
					return err
				}
				codebase = snapshot.Summary()
			} else {
				var err error
				codebase, err = readSource(cmd.InOrStdin(), args[0])
				if err != nil {
					return err
				}
			}
			helpers.RenderList(cmd.OutOrStdout(), withSpinner(func() []string {
				return container.Assistant.AnalyzeCodebase(cmd.Context(), codebase)
			}))
			return nil
		},
	}
}

func newAdviseRefactorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "refactor <component> <file|->",
		Short: "Suggest refactoring for a component",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Assistant == nil {
				return errors.New(ErrAssistantUnavailable)
			}
			code, err := readSource(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			helpers.RenderList(cmd.OutOrStdout(), withSpinner(func() []string {
				return container.Assistant.SuggestRefactoring(cmd.Context(), args[0], code)
			}))
			return nil
		},
	}
}

func newAdviseTestsCommand(container *app.Container) *cobra.Command {
	var props []string

	cmd := &cobra.Command{
		Use:   "tests <component>",
		Short: "Generate tests for a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Assistant == nil {
				return errors.New(ErrAssistantUnavailable)
			}
			parsed, err := helpers.ParseProps(props)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), withSpinner(func() string {
				return container.Assistant.GenerateTests(cmd.Context(), args[0], parsed)
			}))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&props, "prop", nil, "Component prop as key=value (repeatable)")
	return cmd
}

func newAdviseOptimizeCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "optimize <component> <file|->",
		Short: "Suggest performance optimizations for a component",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Assistant == nil {
				return errors.New(ErrAssistantUnavailable)
			}
			code, err := readSource(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			helpers.RenderList(cmd.OutOrStdout(), withSpinner(func() []string {
				return container.Assistant.OptimizePerformance(cmd.Context(), args[0], code)
			}))
			return nil
		},
	}
}

// readSource reads a file path, or stdin when path is "-".
func readSource(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%s is empty", path)
	}
	return string(data), nil
}
