// Package remover runs the select, confirm and remove pipeline against the
// components directory and reports the results through a ui.Provider.
package remover

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/shadcn-remover/shadcn-remover/internal/component"
	"github.com/shadcn-remover/shadcn-remover/internal/trace"
	"github.com/shadcn-remover/shadcn-remover/internal/ui"
)

// ErrPartialFailure is returned when at least one component could not be removed.
// The summary has already been shown to the user when it is returned.
var ErrPartialFailure = errors.New("one or more components could not be removed")

// Config is everything a run needs to know.
type Config struct {
	// Dir is the components directory, see paths.ComponentsDir.
	Dir string
	// WorkDir is the directory reported paths are relative to.
	WorkDir string
	// Names are the components requested on the command line.
	Names []string
	// All removes every discovered component.
	All bool
	// DryRun only reports what would be removed.
	DryRun bool
}

// Run resolves which components to remove, asks for confirmation and removes them.
//
// Cancellation by the user, an empty inventory and an empty selection are not errors.
// ErrPartialFailure is returned if any component failed; the returned Report is
// complete in that case.
func Run(ctx context.Context, cfg Config, uiProvider ui.Provider) (Report, error) {
	ctx, span := trace.NewSpan(ctx, "remover.Run",
		attribute.Bool("dry_run", cfg.DryRun),
		attribute.Bool("all", cfg.All),
	)
	defer span.End()

	report := Report{
		RunID:    uuid.NewString(),
		DryRun:   cfg.DryRun,
		Outcomes: []Result{},
	}
	span.SetAttributes(attribute.String("run_id", report.RunID))

	selected, err := component.ResolveSelection(component.SelectionInput{
		Names: cfg.Names,
		All:   cfg.All,
		Inventory: func() ([]string, error) {
			return component.List(cfg.Dir)
		},
		Prompt: func(options []string) ([]string, error) {
			return uiProvider.MultiSelect("Select components to remove:", options)
		},
		Warn: uiProvider.ShowWarning,
	})
	switch {
	case errors.Is(err, component.ErrNothingToDo):
		if cfg.All {
			uiProvider.ShowWarning("No components found in components/ui directory.")
		} else {
			uiProvider.ShowWarning("No components found to select from in components/ui directory.")
		}
		return report, nil
	case errors.Is(err, component.ErrNothingSelected):
		uiProvider.ShowWarning("No components selected or specified for removal. Exiting.")
		return report, nil
	case errors.Is(err, ui.ErrCancelled):
		uiProvider.ShowMuted("Operation cancelled by user.")
		return report, nil
	case err != nil:
		return report, trace.SpanError(span, err)
	}

	if cfg.All {
		uiProvider.ShowInfo(fmt.Sprintf("Attempting to remove all %d detected components.", len(selected)))
	}
	uiProvider.ShowNotice("Selected components: " + strings.Join(selected, ", "))

	ok, err := uiProvider.Confirm(confirmPrompt(cfg.DryRun, len(selected)), false)
	if err != nil && !errors.Is(err, ui.ErrCancelled) {
		return report, trace.SpanError(span, fmt.Errorf("unable to confirm removal: %w", err))
	}
	if !ok || err != nil {
		uiProvider.ShowMuted("Operation cancelled by user.")
		return report, nil
	}

	opts := component.Options{
		Dir:     cfg.Dir,
		WorkDir: cfg.WorkDir,
		DryRun:  cfg.DryRun,
	}
	var outcomes []component.Outcome
	if err := uiProvider.RunWithSpinner(spinnerMessage(cfg.DryRun), func() error {
		outcomes = component.RemoveAll(ctx, opts, selected)
		return nil
	}); err != nil {
		return report, trace.SpanError(span, err)
	}

	for _, o := range outcomes {
		showOutcome(uiProvider, o)
		report.add(o)
	}
	span.SetAttributes(
		attribute.Int("succeeded", report.Succeeded),
		attribute.Int("failed", report.Failed),
	)

	switch {
	case report.Failed > 0:
		uiProvider.ShowWarning(fmt.Sprintf("Completed with %d error(s). %d component(s) processed.", report.Failed, report.Succeeded))
		return report, trace.SpanError(span, ErrPartialFailure)
	case cfg.DryRun:
		uiProvider.ShowSuccess(fmt.Sprintf("Dry run complete. %d component(s) simulated for removal.", report.Succeeded))
	default:
		uiProvider.ShowSuccess(fmt.Sprintf("Successfully removed %d component(s).", report.Succeeded))
	}

	return report, nil
}

func confirmPrompt(dryRun bool, n int) string {
	if dryRun {
		return fmt.Sprintf("Dry run: Show removal actions for %d component(s)?", n)
	}
	return fmt.Sprintf("Are you sure you want to permanently remove %d component(s)?", n)
}

func spinnerMessage(dryRun bool) string {
	if dryRun {
		return "Simulating component removal..."
	}
	return "Removing components..."
}

func showOutcome(uiProvider ui.Provider, o component.Outcome) {
	switch o.Status {
	case component.StatusSimulated:
		uiProvider.ShowInfo(fmt.Sprintf("[Dry Run] Would remove %s: %s", o.Kind, o.Path))
	case component.StatusRemoved:
		uiProvider.ShowSuccess(fmt.Sprintf("Removed %s: %s", o.Kind, o.Path))
	case component.StatusNotFound:
		uiProvider.ShowWarning(o.Err.Error())
	default:
		uiProvider.ShowError(o.Err)
	}
}
