// Command relaxwalk loads a YAML scenario, answers its shortest-path queries and
// prints one report block per query.
//
// Usage:
//
//	relaxwalk -scenario graph.yaml [-strategy fifo|heap] [-debug]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/katalvlaran/relaxwalk/graphio"
	"github.com/katalvlaran/relaxwalk/walker"
)

var errNoScenario = errors.New("relaxwalk: -scenario is required")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

// run parses args, runs the scenario and writes the report to stdout.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("relaxwalk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenario := fs.String("scenario", "", "path to the YAML scenario file")
	strategyName := fs.String("strategy", walker.StrategyFIFO.String(), "relaxation strategy: fifo or heap")
	debug := fs.Bool("debug", false, "development logging with per-relaxation entries")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenario == "" {
		return errNoScenario
	}

	strategy, err := walker.ParseStrategy(*strategyName)
	if err != nil {
		return err
	}

	logger, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("relaxwalk: logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	doc, err := graphio.Load(*scenario)
	if err != nil {
		return err
	}

	runner := graphio.NewRunner(
		graphio.WithLogger(logger),
		graphio.WithWalkerOptions(walker.WithStrategy(strategy)),
	)
	results, err := runner.Run(ctx, doc)
	if rerr := graphio.Report(stdout, results); rerr != nil && err == nil {
		err = rerr
	}

	return err
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
