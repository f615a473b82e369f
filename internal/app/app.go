// Package app owns the process lifecycle: argument handling, signal
// wiring, command execution, and the mapping from errors to exit codes.
package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/dmercier/srplab/internal/cli"
	apperrors "github.com/dmercier/srplab/internal/errors"
)

// Version is the application version, overridden at build time via
// -ldflags "-X github.com/dmercier/srplab/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "srplab version %s\n", Version)
}

// Application represents one srplab invocation.
type Application struct {
	args      []string
	errWriter io.Writer
}

// New creates an Application from the raw process arguments.
//
// Parameters:
//   - args: The full argument vector, including the program name.
//   - errWriter: The destination for error output.
//
// Returns:
//   - *Application: The application instance.
func New(args []string, errWriter io.Writer) *Application {
	var cmdArgs []string
	if len(args) > 0 {
		cmdArgs = args[1:]
	}
	return &Application{args: cmdArgs, errWriter: errWriter}
}

// Run executes the command tree and returns the process exit code.
// SIGINT and SIGTERM cancel the run; a canceled run exits with the
// conventional interrupt code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	root := cli.NewRootCmd()
	root.SetArgs(a.args)
	root.SetOut(out)
	root.SetErr(a.errWriter)

	if err := root.ExecuteContext(ctx); err != nil {
		if apperrors.IsContextError(err) {
			fmt.Fprintln(a.errWriter, "Canceled.")
			return apperrors.ExitErrorCanceled
		}
		fmt.Fprintf(a.errWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}
