package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dc25-uiux/uxai/internal/app"
	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/infrastructure/cli/helpers"
)

type recommendOptions struct {
	context      string
	complexity   string
	style        string
	framework    string
	provider     string
	codebase     string
	requirements string
	detect       string
	asJSON       bool
	timeout      time.Duration
}

// NewRecommendCommand creates the recommend command
func NewRecommendCommand(container *app.Container) *cobra.Command {
	var opts recommendOptions

	cmd := &cobra.Command{
		Use:   "recommend <description>",
		Short: "Recommend UI components for a description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, container, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.context, "context", "", "Where the component will be used")
	cmd.Flags().StringVar(&opts.complexity, "complexity", "", "Preferred complexity (simple|medium|complex)")
	cmd.Flags().StringVar(&opts.style, "style", "", "Preferred style (minimal|rich|custom)")
	cmd.Flags().StringVar(&opts.framework, "framework", "", "Target framework (react|vue|angular)")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", "", "Override provider mode (openrouter|kilocode|hybrid)")
	cmd.Flags().StringVar(&opts.codebase, "codebase", "", "Codebase summary sent to KiloCode")
	cmd.Flags().StringVar(&opts.requirements, "requirements", "", "Comma separated requirements sent to KiloCode")
	cmd.Flags().StringVar(&opts.detect, "detect", "", "Inspect a project directory to fill framework and codebase")
	cmd.Flags().Lookup("detect").NoOptDefVal = "."
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the response as JSON")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", domain.DefaultHTTPClientTimeout, "Override request timeout")
	return cmd
}

func runRecommend(cmd *cobra.Command, container *app.Container, description string, opts recommendOptions) error {
	if container.Assistant == nil {
		return errors.New(ErrAssistantUnavailable)
	}

	mode := container.Assistant.Config().DefaultProvider
	if opts.provider != "" {
		mode = domain.ProviderMode(opts.provider)
		if !mode.Valid() {
			return fmt.Errorf("unknown provider %q", opts.provider)
		}
	}

	req := domain.RecommendationRequest{
		Description:  description,
		Context:      opts.context,
		Codebase:     opts.codebase,
		Requirements: helpers.SplitAndTrimCSV(opts.requirements),
	}
	if opts.detect != "" {
		snapshot, err := inspectProject(cmd, container, opts.detect)
		if err != nil {
			return err
		}
		if opts.framework == "" {
			opts.framework = snapshot.Framework
		}
		if req.Codebase == "" {
			req.Codebase = snapshot.Summary()
		}
	}
	prefs := domain.Preferences{Complexity: opts.complexity, Style: opts.style, Framework: opts.framework}
	if !prefs.Empty() {
		req.Preferences = &prefs
	}

	ctx := cmd.Context()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	resp := withSpinner(func() domain.AssistantResponse {
		return container.Assistant.RecommendWith(ctx, req, mode)
	})

	out := cmd.OutOrStdout()
	if opts.asJSON {
		return helpers.RenderJSON(out, resp)
	}
	helpers.RenderResponse(out, resp)
	return nil
}

func inspectProject(cmd *cobra.Command, container *app.Container, dir string) (domain.ProjectSnapshot, error) {
	if container.Inspector == nil {
		return domain.ProjectSnapshot{}, errors.New(ErrInspectorUnavailable)
	}
	snapshot, err := container.Inspector.Inspect(cmd.Context(), dir)
	if err != nil {
		return domain.ProjectSnapshot{}, fmt.Errorf("inspect project: %w", err)
	}
	return snapshot, nil
}

// withSpinner animates on an interactive stderr while fn runs.
func withSpinner[T any](fn func() T) T {
	if !helpers.Interactive(os.Stderr) {
		return fn()
	}
	spinner := helpers.NewSpinner(os.Stderr)
	spinner.Start()
	defer spinner.Stop()
	return fn()
}
