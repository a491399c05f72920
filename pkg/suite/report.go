package suite

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/vertti/featurecheck/pkg/check"
)

// Report is the outcome of one suite run. It is not modified after Run returns.
type Report struct {
	Results []check.Result
	Passed  int
	Total   int
}

func newReport(results []check.Result) Report {
	r := Report{Results: results, Total: len(results)}
	for _, res := range results {
		if res.OK() {
			r.Passed++
		}
	}
	return r
}

// OK returns true if every check passed.
func (r Report) OK() bool {
	return r.Passed == r.Total
}

// Failed returns the failed results in report order.
func (r Report) Failed() []check.Result {
	var failed []check.Result
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err combines the errors of all failed checks, or returns nil.
func (r Report) Err() error {
	var err error
	for _, res := range r.Failed() {
		cause := res.Err
		if cause == nil {
			cause = fmt.Errorf("%s", res.Kind)
		}
		err = multierr.Append(err, fmt.Errorf("%s: %w", res.Name, cause))
	}
	return err
}
