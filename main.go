package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"

	"github.com/shadcn-remover/shadcn-remover/internal/cmd"
	"github.com/shadcn-remover/shadcn-remover/internal/remerr"
	"github.com/shadcn-remover/shadcn-remover/internal/remover"
	"github.com/shadcn-remover/shadcn-remover/internal/trace"
)

func main() {
	// ensure the pterm info width matches the other printers
	pterm.Info.Prefix.Text = " INFO  "
	handleErr(run())
}

func run() error {
	ctx, cancel := cliContext()
	defer cancel()

	shutdowns, err := trace.Init(ctx)
	if err != nil {
		pterm.Debug.Printfln("unable to initialize tracing: %s", err)
	}
	defer func() {
		for _, shutdown := range shutdowns {
			shutdown()
		}
	}()

	var root cmd.Cmd
	parser, err := kong.New(
		&root,
		kong.Name("shadcn-remover"),
		kong.Description("Remove Shadcn UI components from src/components/ui."),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	parsed, err := parser.Parse(os.Args[1:])
	if err != nil {
		return err
	}
	parsed.BindToProvider(bindCtx(ctx))
	return parsed.Run()
}

func handleErr(err error) {
	if err == nil {
		return
	}

	// the summary of the failed components has already been shown
	if errors.Is(err, remover.ErrPartialFailure) {
		os.Exit(1)
	}

	pterm.Error.Println(err)

	var errParse *kong.ParseError
	if errors.As(err, &errParse) {
		_ = kong.DefaultHelpPrinter(kong.HelpOptions{}, errParse.Context)
	}

	var e *remerr.Error
	if errors.As(err, &e) {
		pterm.Println()
		pterm.Info.Println(e.Help())
	}

	os.Exit(1)
}

// get a context that listens for interrupt/shutdown signals.
func cliContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	// listen for shutdown signals
	go func() {
		signalCh := make(chan os.Signal, 1)
		signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
		<-signalCh

		cancel()
	}()
	return ctx, cancel
}

// bindCtx exists to allow kong to correctly inject a context.Context into the Run methods on the commands.
func bindCtx(ctx context.Context) func() (context.Context, error) {
	return func() (context.Context, error) {
		return ctx, nil
	}
}
