package main

import (
	"os"
)

func main() {
	opts, err := ParseCommand(os.Args[1:])
	if err != nil {
		os.Exit(HandleExitError(os.Stderr, err))
	}

	ctx, stop := SignalContext()
	defer stop()

	exitCode := HandleExitError(os.Stderr, RunCommand(ctx, opts, os.Stdout))
	stop()
	os.Exit(exitCode)
}
