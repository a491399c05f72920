// Package featurecase defines declarative feature checks: named bundles of
// artifacts and the literal markers each artifact must contain.
package featurecase

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/multierr"

	"github.com/vertti/featurecheck/pkg/artifact"
	"github.com/vertti/featurecheck/pkg/check"
	"github.com/vertti/featurecheck/pkg/marker"
	"github.com/vertti/featurecheck/pkg/suite"
)

// Case is one named verification unit.
type Case struct {
	Name  string `yaml:"name"`
	Files []File `yaml:"files"`
}

// File is an artifact required by a case and the marker passes run against it.
type File struct {
	Path   string `yaml:"path"` // slash-separated, relative to the artifact root
	Passes []Pass `yaml:"passes"`
}

// Pass is an independent set of markers evaluated against one file.
// Name is optional and only used for reporting.
type Pass struct {
	Name    string        `yaml:"name,omitempty"`
	Markers []marker.Spec `yaml:"markers"`
}

// Reader returns artifact text. *artifact.Reader implements it.
type Reader interface {
	Read(path string) (string, error)
}

// Check binds a Case to a Reader.
type Check struct {
	Case   Case
	Reader Reader // injected for testing
}

// Run executes the case: every file is read first, then every marker of
// every pass is evaluated. The case passes only if all files exist and all
// markers are present.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: c.Case.Name,
	}

	contents := make([]string, len(c.Case.Files))
	for i, f := range c.Case.Files {
		text, err := c.Reader.Read(f.Path)
		if err != nil {
			switch {
			case errors.Is(err, artifact.ErrNotFound):
				return result.Failf(check.KindMissingArtifact, "file not found: %s (%w)", f.Path, fs.ErrNotExist)
			case errors.Is(err, artifact.ErrUnreadable):
				return result.Failf(check.KindUnreadableArtifact, "file unreadable: %s (%w)", f.Path, cause(err))
			default:
				return result.Failf(check.KindUnexpected, "failed to read %s: %w", f.Path, err)
			}
		}
		contents[i] = text
	}

	var missing error
	for i, f := range c.Case.Files {
		result.AddDetailf("file: %s", f.Path)
		for _, p := range f.Passes {
			if p.Name != "" {
				result.AddDetailf("%s:", p.Name)
			}
			outcomes, allPresent := marker.Check(contents[i], p.Markers)
			for _, o := range outcomes {
				if o.Present {
					result.AddStatus(true, o.Spec.Label)
				} else {
					result.AddStatus(false, fmt.Sprintf("%s: missing %q", o.Spec.Label, o.Spec.Text))
				}
			}
			if allPresent {
				continue
			}
			for _, m := range marker.Missing(outcomes) {
				missing = multierr.Append(missing, fmt.Errorf("%s: %s: marker %q not found", f.Path, m.Label, m.Text))
			}
		}
	}

	if missing != nil {
		result.Status = check.StatusFail
		result.Kind = check.KindMarkerAbsent
		result.Err = missing
		return result
	}

	result.Status = check.StatusOK
	return result
}

// cause returns the underlying error of an artifact read failure.
func cause(err error) error {
	var aerr *artifact.Error
	if errors.As(err, &aerr) && aerr.Err != nil {
		return aerr.Err
	}
	return err
}

// Suite registers one Check per case, in order, all sharing reader.
func Suite(cases []Case, reader Reader) (*suite.Suite, error) {
	s := suite.New()
	for _, c := range cases {
		if err := s.Add(c.Name, &Check{Case: c, Reader: reader}); err != nil {
			return nil, err
		}
	}
	return s, nil
}
