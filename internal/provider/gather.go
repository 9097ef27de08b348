package provider

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Call is one upstream fetch in a fan-out. Required calls fail the whole
// gather; optional calls degrade to an absent result.
type Call struct {
	Name     string
	Required bool
	Run      func(ctx context.Context) (interface{}, error)
}

// Result holds the outcome of one Call.
type Result struct {
	Value interface{}
	Err   error
}

// Ok reports whether the call produced a usable value.
func (r Result) Ok() bool {
	return r.Err == nil && r.Value != nil
}

// Gather runs all calls concurrently and waits for every one of them to
// settle — a slow or failed optional call never cancels its siblings. After
// all calls finish, the first required failure (in call order) is returned;
// optional failures are logged at Warn and left in the result map for the
// caller to treat as absent.
func Gather(ctx context.Context, logger *slog.Logger, calls []Call) (map[string]Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]Result, len(calls))
	g := new(errgroup.Group)
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			v, err := call.Run(ctx)
			results[i] = Result{Value: v, Err: err}
			return nil
		})
	}
	// Tasks always return nil; Wait is just the barrier.
	_ = g.Wait()

	out := make(map[string]Result, len(calls))
	for i, call := range calls {
		res := results[i]
		out[call.Name] = res
		if res.Err == nil {
			continue
		}
		if call.Required {
			continue
		}
		logger.Warn("optional upstream call failed", "call", call.Name, "error", res.Err)
	}

	for i, call := range calls {
		if call.Required && results[i].Err != nil {
			return out, fmt.Errorf("%s: %w", call.Name, results[i].Err)
		}
	}
	return out, nil
}
