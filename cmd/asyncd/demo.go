package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tupyy/async-engine/pkg/scheduler"
)

type demoOptions struct {
	longSteps    int
	stepDuration time.Duration
	background   bool
}

func newDemoCommand(_ *rootOptions) *cobra.Command {
	d := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Interleave an urgent task into a long running one and print the trace",
		Long: `Runs a one worker pool. A long task L (priority 10) is submitted first;
while its first step runs, an urgent task U (priority 0) is submitted. L yields
at its next step boundary, U runs to completion, then L resumes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), d, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&d.longSteps, "long-steps", 5, "number of step calls of the long task")
	cmd.Flags().DurationVar(&d.stepDuration, "step-duration", 50*time.Millisecond, "duration of a single step call")
	cmd.Flags().BoolVar(&d.background, "background", false, "also run an independent background task")

	return cmd
}

func runDemo(ctx context.Context, d *demoOptions, out io.Writer) error {
	var (
		long   = color.New(color.FgYellow).SprintFunc()
		urgent = color.New(color.FgCyan, color.Bold).SprintFunc()
		bg     = color.New(color.FgMagenta).SprintFunc()
		done   = color.New(color.FgGreen).SprintFunc()
	)

	var mu sync.Mutex
	printLine := func(a ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(out, a...)
	}

	s := scheduler.NewScheduler(1)
	defer s.Close()

	started := make(chan struct{})
	var calls atomic.Int32

	l := s.Submit(10, func(a *scheduler.Async, _ any) bool {
		if a.IsCancelRequested() {
			a.Abort()
			return false
		}
		n := calls.Add(1)
		if n == 1 {
			close(started)
		}
		time.Sleep(d.stepDuration)
		printLine(long(fmt.Sprintf("L%d", n)))
		return int(n) < d.longSteps
	}, nil, nil)
	l.AddCallback(func(*scheduler.Async) { printLine(done("L completed")) })
	handles := []*scheduler.Async{l}

	select {
	case <-started:
	case <-ctx.Done():
		return ctx.Err()
	}

	u := s.Submit(0, func(*scheduler.Async, any) bool {
		printLine(urgent("U"))
		return false
	}, nil, nil)
	u.AddCallback(func(*scheduler.Async) { printLine(done("U completed")) })
	handles = append(handles, u)

	if d.background {
		var bgCalls atomic.Int32
		b := s.SubmitIndependent(10, func(*scheduler.Async, any) bool {
			n := bgCalls.Add(1)
			time.Sleep(d.stepDuration)
			printLine(bg(fmt.Sprintf("B%d", n)))
			return n < 3
		}, nil)
		b.AddCallback(func(*scheduler.Async) { printLine(done("B completed")) })
		handles = append(handles, b)
	}

	// Done, not Wait: Wait boosts the awaited task ahead of U.
	for _, a := range handles {
		select {
		case <-a.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
