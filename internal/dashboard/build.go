package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Section statuses.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
)

// NoSelectionMessage is shown in place of the per-country chart when no
// countries are selected.
const NoSelectionMessage = "Please select countries to display the line graph."

// Result is one built section.
type Result struct {
	Name        string
	Description string
	Status      string
	Message     string
	Panel       Panel // nil when skipped
	Duration    time.Duration
}

// Build computes the named sections concurrently. The table is shared
// read-only; each section writes only its own result slot, so results come
// back in the order of names. Any section error other than ErrNoSelection
// aborts the build.
func Build(ctx context.Context, in Input, names []string) ([]Result, error) {
	secs := make([]Section, len(names))
	for i, name := range names {
		if secs[i] = Get(name); secs[i] == nil {
			return nil, fmt.Errorf("unknown section %q", name)
		}
	}

	results := make([]Result, len(names))
	g, ctx := errgroup.WithContext(ctx)

	for i, sec := range secs {
		name := names[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			res := Result{Name: sec.Name(), Description: sec.Description()}

			panel, err := sec.Build(in)
			switch {
			case errors.Is(err, ErrNoSelection):
				res.Status = StatusSkipped
				res.Message = NoSelectionMessage
			case err != nil:
				return fmt.Errorf("section %s: %w", name, err)
			default:
				res.Status = StatusOK
				res.Panel = panel
			}
			res.Duration = time.Since(start)
			slog.Debug("section built", "section", name, "status", res.Status, "duration", res.Duration)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
