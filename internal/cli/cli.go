package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/nfa2dfa/internal/app"
)

// UsageLine is the one-line usage message printed on argument errors.
const UsageLine = "Usage: nfa2dfa [options] <input_file>"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Help text and flag errors are written to output.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("nfa2dfa", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
nfa2dfa - converts a nondeterministic finite automaton into an equivalent
total deterministic one by subset construction.

Usage:
  nfa2dfa [options] <input_file>

Arguments:
  input_file
    Automaton description in the section text format, or an .hcl file
    holding one or more automaton blocks.

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", app.FormatAuto, "Input format. Options: 'auto', 'text' or 'hcl'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", app.DefaultWorkers, "Maximum concurrent conversions for files holding several automata.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "positional", flagSet.NArg())

	if flagSet.NArg() != 1 {
		return nil, false, &ExitError{Code: 1, Message: UsageLine}
	}

	config, err := app.NewConfig(app.Config{
		InputPath:   flagSet.Arg(0),
		InputFormat: strings.ToLower(*formatFlag),
		Workers:     *workersFlag,
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
