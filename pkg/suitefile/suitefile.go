// Package suitefile loads and writes YAML suite manifests.
//
// A manifest replaces the built-in suite with an explicit list of cases:
//
//	version: 1
//	cases:
//	  - name: Deployment configuration
//	    files:
//	      - path: docker/image_providers.yaml
//	        passes:
//	          - markers:
//	              - text: "use_sse: false"
//	                label: documented use_sse default
package suitefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vertti/featurecheck/pkg/featurecase"
)

// Version is the only manifest version understood.
const Version = 1

// Manifest is the on-disk form of a suite.
type Manifest struct {
	Version int                `yaml:"version"`
	Cases   []featurecase.Case `yaml:"cases"`
}

// ParseFile reads and validates the manifest at path.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: manifest path from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("suite file is empty")
		}
		return nil, fmt.Errorf("failed to parse suite YAML: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks version and structure.
func (m *Manifest) Validate() error {
	if m.Version != Version {
		return fmt.Errorf("unsupported suite version %d (want %d)", m.Version, Version)
	}
	if len(m.Cases) == 0 {
		return errors.New("suite defines no cases")
	}

	seen := map[string]bool{}
	for i, c := range m.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d: name is required", i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("case %q: duplicate name", c.Name)
		}
		seen[c.Name] = true

		if len(c.Files) == 0 {
			return fmt.Errorf("case %q: at least one file is required", c.Name)
		}
		for _, f := range c.Files {
			if f.Path == "" {
				return fmt.Errorf("case %q: file path is required", c.Name)
			}
			if err := validatePasses(c.Name, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func validatePasses(caseName string, f featurecase.File) error {
	if len(f.Passes) == 0 {
		return fmt.Errorf("case %q: %s: at least one marker is required", caseName, f.Path)
	}
	for i, p := range f.Passes {
		if len(p.Markers) == 0 {
			name := p.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return fmt.Errorf("case %q: %s: pass %q has no markers", caseName, f.Path, name)
		}
		for _, mk := range p.Markers {
			if mk.Text == "" {
				return fmt.Errorf("case %q: %s: marker text is required", caseName, f.Path)
			}
			if mk.Label == "" {
				return fmt.Errorf("case %q: %s: marker %q has no label", caseName, f.Path, mk.Text)
			}
		}
	}
	return nil
}

// Write encodes cases as a manifest.
func Write(w io.Writer, cases []featurecase.Case) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Manifest{Version: Version, Cases: cases}); err != nil {
		return fmt.Errorf("failed to encode suite: %w", err)
	}
	return enc.Close()
}
