package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/cartesian/internal/cli"
	"github.com/matzehuels/cartesian/pkg/errors"
)

// Exit codes. Bad chart specs and frame misconfiguration exit with
// exitInvalid so scripts can tell them apart from render failures.
const (
	exitOK          = 0
	exitFailure     = 1
	exitInvalid     = 2
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
	stop()

	code := exitCode(err)
	if code != exitOK && code != exitInterrupted {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.UserMessage(err))
	}
	os.Exit(code)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case stderrors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.IsConfiguration(err):
		return exitInvalid
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSpec, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		return exitInvalid
	}
	return exitFailure
}
