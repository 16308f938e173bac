package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/comalice/coordstate"
	"github.com/comalice/coordstate/internal/production"
)

const (
	demoValue     uint32 = 500_000
	demoThreshold uint16 = 456
)

var demoState = coordstate.State{X: 23, Y: 456}

// run transitions s by threshold and prints the zero check of value
// alongside the new x field. Nothing is written if the transition fails.
func run(w io.Writer, value uint32, s coordstate.State, threshold uint16) error {
	next, err := s.Transition(threshold)
	if err != nil {
		return fmt.Errorf("transition %v with threshold %d: %w", s, threshold, err)
	}
	return production.NewPrinter(w).Print(production.Result{
		Zero: coordstate.IsZero(value),
		X:    next.X,
	})
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, demoValue, demoState, demoThreshold); err != nil {
		logger.Error("demo failed",
			zap.Error(err),
			zap.Bool("boundary_violation", coordstate.IsBoundaryViolation(err)),
		)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
