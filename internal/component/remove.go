package component

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/shadcn-remover/shadcn-remover/internal/paths"
	"github.com/shadcn-remover/shadcn-remover/internal/trace"
	"github.com/shadcn-remover/shadcn-remover/internal/validate"
)

// removeFile and removeDir are function pointers to os.Remove and os.RemoveAll, defined here for testing purposes.
var (
	removeFile = os.Remove
	removeDir  = os.RemoveAll
)

// Options configure a removal.
type Options struct {
	// Dir is the components directory.
	Dir string
	// WorkDir is the directory reported paths are relative to.
	WorkDir string
	// DryRun reports what would be removed without touching the filesystem.
	DryRun bool
}

// Locate finds the component named name within dir.
// A directory named name takes precedence over a file named name with the .tsx suffix.
// Returns ErrNotFound if neither exists.
func Locate(dir, name string) (Target, error) {
	dirPath := filepath.Join(dir, name)
	info, err := os.Stat(dirPath)
	switch {
	case err == nil && info.IsDir():
		return Target{Name: name, Path: dirPath, Kind: KindDirectory}, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return Target{}, fmt.Errorf("unable to check directory %s: %w", dirPath, err)
	}

	filePath := filepath.Join(dir, name+paths.ComponentSuffix)
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Target{}, fmt.Errorf("%w: %s (checked for %s%s and directory %s)",
				ErrNotFound, name, name, paths.ComponentSuffix, name)
		}
		return Target{}, fmt.Errorf("unable to check file %s: %w", filePath, err)
	}

	return Target{Name: name, Path: filePath, Kind: KindFile}, nil
}

// RemoveOne removes the component named name, or simulates it if opts.DryRun is set.
// Failures are reported in the returned Outcome and never panic or affect other components.
func RemoveOne(ctx context.Context, opts Options, name string) Outcome {
	_, span := trace.NewSpan(ctx, "component.RemoveOne",
		attribute.String("component", name),
		attribute.Bool("dry_run", opts.DryRun),
	)
	defer span.End()

	if !validate.IsComponentName(name) {
		return Outcome{Name: name, Status: StatusError, Err: trace.SpanError(span, fmt.Errorf("%w: %q", ErrInvalidName, name))}
	}

	target, err := Locate(opts.Dir, name)
	if err != nil {
		status := StatusError
		if errors.Is(err, ErrNotFound) {
			status = StatusNotFound
		}
		return Outcome{Name: name, Status: status, Err: trace.SpanError(span, err)}
	}

	outcome := Outcome{
		Name: name,
		Kind: target.Kind,
		Path: paths.Relative(opts.WorkDir, target.Path),
	}
	span.SetAttributes(attribute.String("kind", string(target.Kind)))

	if opts.DryRun {
		outcome.Status = StatusSimulated
		return outcome
	}

	if err := remove(target); err != nil {
		outcome.Status = StatusError
		outcome.Err = trace.SpanError(span, fmt.Errorf("failed to remove %s %s: %w", target.Kind, name, err))
		return outcome
	}

	outcome.Status = StatusRemoved
	return outcome
}

func remove(target Target) error {
	if target.Kind == KindDirectory {
		return removeDir(target.Path)
	}
	return removeFile(target.Path)
}

// RemoveAll processes every name concurrently and waits for all of them to finish.
// The returned outcomes are in the same order as names.
// Once started, removals are not cancelled, and a failure never stops the others.
func RemoveAll(ctx context.Context, opts Options, names []string) []Outcome {
	ctx, span := trace.NewSpan(ctx, "component.RemoveAll",
		attribute.Int("total_components", len(names)),
		attribute.Bool("dry_run", opts.DryRun),
	)
	defer span.End()

	outcomes := make([]Outcome, len(names))

	var wg sync.WaitGroup
	wg.Add(len(names))
	for i, name := range names {
		go func(i int, name string) {
			defer wg.Done()
			outcomes[i] = RemoveOne(ctx, opts, name)
		}(i, name)
	}
	wg.Wait()

	return outcomes
}
