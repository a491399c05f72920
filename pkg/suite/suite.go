// Package suite runs an ordered set of named checks and collects a Report.
package suite

import (
	"errors"
	"fmt"

	"github.com/vertti/featurecheck/pkg/check"
)

// ErrDuplicateName is returned when a check name is registered twice.
var ErrDuplicateName = errors.New("duplicate check name")

type entry struct {
	name    string
	checker check.Checker
}

// Suite is an ordered collection of uniquely named checks.
type Suite struct {
	entries []entry
	names   map[string]struct{}
}

// New returns an empty suite.
func New() *Suite {
	return &Suite{names: map[string]struct{}{}}
}

// Add registers a check. Execution and report order follow registration order.
func (s *Suite) Add(name string, c check.Checker) error {
	if name == "" {
		return errors.New("check name is required")
	}
	if c == nil {
		return fmt.Errorf("check %q: checker is nil", name)
	}
	if _, ok := s.names[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	s.names[name] = struct{}{}
	s.entries = append(s.entries, entry{name: name, checker: c})
	return nil
}

// Names returns the registered check names in order.
func (s *Suite) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.name
	}
	return names
}

// Len returns the number of registered checks.
func (s *Suite) Len() int {
	return len(s.entries)
}
