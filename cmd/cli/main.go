package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/nfa2dfa/internal/app"
	"github.com/vk/nfa2dfa/internal/cli"
	"github.com/vk/nfa2dfa/internal/codec"
	"github.com/vk/nfa2dfa/internal/hcl"
)

// main is the entrypoint for the nfa2dfa application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Resource, format and validation errors are reported on outW as a
// single line and are not returned.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	converter := app.NewApp(outW, errW, appConfig, newLoader(appConfig))
	if err := converter.Run(context.Background()); err != nil {
		if msg, ok := app.Report(err); ok {
			fmt.Fprintln(outW, msg)
			return nil
		}
		return err
	}
	return nil
}

// newLoader instantiates the concrete loader for the configured input format.
func newLoader(cfg *app.Config) codec.Loader {
	if cfg.Format() == app.FormatHCL {
		return hcl.NewLoader()
	}
	return codec.NewTextLoader()
}
