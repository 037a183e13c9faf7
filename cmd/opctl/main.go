// Package main is the opctl command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/cli"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/sequencer"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/tracker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand(newTracker)
	if err := cmd.ExecuteContext(ctx); err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(cli.GetExitCode(err))
	}
}

func newTracker(opts *cli.RootOptions) (cli.Tracker, error) {
	client, err := sequencer.NewClient(sequencer.Config{
		BaseURL: opts.SequencerURL,
		Timeout: opts.Timeout,
		RPS:     opts.RPS,
	})
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if opts.Verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}
	return tracker.New(client, nil, logger), nil
}
