package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"
	"go.opentelemetry.io/otel/attribute"

	"github.com/shadcn-remover/shadcn-remover/internal/build"
	"github.com/shadcn-remover/shadcn-remover/internal/config"
	"github.com/shadcn-remover/shadcn-remover/internal/paths"
	"github.com/shadcn-remover/shadcn-remover/internal/remover"
	"github.com/shadcn-remover/shadcn-remover/internal/trace"
	"github.com/shadcn-remover/shadcn-remover/internal/ui"
)

type verbose bool

func (v verbose) BeforeApply() error {
	pterm.EnableDebugMessages()
	return nil
}

type versionFlag bool

// BeforeReset prints the build information and exits before any argument is validated.
func (v versionFlag) BeforeReset(app *kong.Kong) error {
	fmt.Fprintln(app.Stdout, build.Info())
	app.Exit(0)
	return nil
}

// Cmd removes shadcn/ui components from the current project.
type Cmd struct {
	Components []string    `arg:"" optional:"" help:"Names of the components to remove, e.g. button card."`
	DryRun     bool        `short:"d" help:"Show what would be removed without actually removing files."`
	All        bool        `short:"a" help:"Attempt to remove all detected Shadcn UI components."`
	Output     string      `short:"o" placeholder:"FORMAT" help:"Render the run report as json or yaml."`
	Verbose    verbose     `short:"v" help:"Enable verbose output."`
	Version    versionFlag `help:"Print version information."`
}

// BeforeApply applies the environment settings and binds the default ui.Provider.
func (c *Cmd) BeforeApply(kCtx *kong.Context) error {
	env, err := config.LoadEnvConfig()
	if err != nil {
		return fmt.Errorf("unable to load environment settings: %w", err)
	}
	if env.Verbose {
		pterm.EnableDebugMessages()
	}
	if env.Colorless() {
		pterm.DisableColor()
	}

	kCtx.BindTo(ui.New(), (*ui.Provider)(nil))
	return nil
}

// Validate is called by kong after the flags have been parsed.
func (c *Cmd) Validate() error {
	if c.Output == "" {
		return nil
	}
	if _, ok := outputHandlers[c.Output]; !ok {
		return fmt.Errorf("unsupported output format: %s (supported: %s)", c.Output, supportedFormats())
	}
	return nil
}

// Run removes the requested components and renders the report if an output format was requested.
func (c *Cmd) Run(ctx context.Context, uiProvider ui.Provider) error {
	ctx, span := trace.NewSpan(ctx, "cmd.Run",
		attribute.Int("requested_components", len(c.Components)),
		attribute.String("output", c.Output),
	)
	defer span.End()

	workDir, err := os.Getwd()
	if err != nil {
		return trace.CaptureError(ctx, fmt.Errorf("unable to determine the working directory: %w", err))
	}

	cfg := remover.Config{
		Dir:     paths.ComponentsDir(workDir),
		WorkDir: workDir,
		Names:   c.Components,
		All:     c.All,
		DryRun:  c.DryRun,
	}
	uiProvider.ShowDebug(fmt.Sprintf("components directory: %s", cfg.Dir))

	report, err := remover.Run(ctx, cfg, uiProvider)
	if err != nil && !errors.Is(err, remover.ErrPartialFailure) {
		return trace.CaptureError(ctx, err)
	}

	if c.Output != "" {
		uiProvider.NewLine()
		if renderErr := RenderOutput(uiProvider, report, c.Output); renderErr != nil {
			return errors.Join(err, renderErr)
		}
	}

	return err
}
