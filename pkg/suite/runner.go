package suite

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vertti/featurecheck/pkg/check"
)

// Runner executes every check of a suite.
type Runner struct {
	Logger   *zap.Logger // defaults to a no-op logger
	Parallel int         // maximum concurrent checks; <= 1 runs sequentially
}

// Run executes all checks in registration order and returns the report.
// A failing or panicking check never stops the run.
func (r *Runner) Run(s *Suite) Report {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]check.Result, len(s.entries))

	if r.Parallel <= 1 {
		for i, e := range s.entries {
			results[i] = runOne(logger, e)
		}
		return newReport(results)
	}

	var g errgroup.Group
	g.SetLimit(r.Parallel)
	for i, e := range s.entries {
		g.Go(func() error {
			results[i] = runOne(logger, e)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return newReport(results)
}

func runOne(logger *zap.Logger, e entry) (res check.Result) {
	log := logger.With(zap.String("check", e.name))
	start := time.Now()
	log.Debug("running check")

	defer func() {
		if v := recover(); v != nil {
			log.Error("check panicked", zap.Any("panic", v))
			res = check.Result{Name: e.name}
			res.Fail(check.KindUnexpected, fmt.Sprintf("unexpected error: %v", v), panicError(v))
		}
		log.Debug("check finished",
			zap.String("status", string(res.Status)),
			zap.String("kind", string(res.Kind)),
			zap.Duration("elapsed", time.Since(start)))
	}()

	res = e.checker.Run()
	res.Name = e.name
	if res.Status != check.StatusOK && res.Status != check.StatusFail {
		res.Fail(check.KindUnexpected, "check returned no status", fmt.Errorf("check %q returned status %q", e.name, res.Status))
	}
	if res.Status == check.StatusFail && res.Kind == "" {
		res.Kind = check.KindUnexpected
	}
	return res
}

func panicError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", v)
}
