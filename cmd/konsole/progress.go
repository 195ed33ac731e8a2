package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jongio/konsole/konsole"
	"github.com/jongio/konsole/progress"
	"github.com/jongio/konsole/terminal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type progressOptions struct {
	workers int
	steps   int
	delay   time.Duration
}

func (o *progressOptions) bind(fs *pflag.FlagSet) {
	fs.IntVarP(&o.workers, "workers", "w", 5, "Number of concurrent operations")
	fs.IntVarP(&o.steps, "steps", "s", 10, "Items each operation works through")
	fs.DurationVar(&o.delay, "delay", 50*time.Millisecond, "Base time per item")
}

func (o *progressOptions) validate() error {
	if o.workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", o.workers)
	}
	if o.steps < 1 {
		return fmt.Errorf("--steps must be at least 1, got %d", o.steps)
	}
	if o.delay < 0 {
		return fmt.Errorf("--delay must not be negative, got %s", o.delay)
	}
	return nil
}

// interval is the time operation i (1-based) spends per item. Odd operations
// are slower so the bars finish out of order.
func (o *progressOptions) interval(i int) time.Duration {
	return o.delay*time.Duration(1+i) + o.delay*time.Duration(i%2)*7/5
}

func newProgressCmd(k *konsole.Konsole) *cobra.Command {
	opts := &progressOptions{}
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Run concurrent operations, each with its own progress bar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return runProgress(cmd.Context(), k, opts)
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

func runProgress(ctx context.Context, k *konsole.Konsole, opts *progressOptions) error {
	k.WriteLine("\nProgress Bars").WriteDivider('-')

	group := progress.NewGroup(k.WithForeColor(terminal.DarkCyan))
	bars := make([]*progress.ProgressBar, opts.workers)
	for i := range bars {
		bars[i] = group.ProgressBar(fmt.Sprintf("Async Operation %d", i+1))
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, bar := range bars {
		interval := opts.interval(i + 1)
		g.Go(func() error {
			return work(ctx, bar, opts.steps, interval)
		})
	}
	err := g.Wait()
	group.Finish()
	if err != nil {
		return fmt.Errorf("progress interrupted: %w", err)
	}

	k.NewLine().Info("Loading is complete!").NewLine()
	return nil
}

func work(ctx context.Context, bar *progress.ProgressBar, steps int, interval time.Duration) error {
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	caption := bar.Caption()
	for step := 1; step <= steps; step++ {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		bar.UpdateCaption(step*100/steps, fmt.Sprintf("%s | Item %d of %d", caption, step, steps))
	}
	return nil
}
