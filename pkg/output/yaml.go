package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vertti/featurecheck/pkg/suite"
)

type yamlReport struct {
	Passed  int          `yaml:"passed"`
	Total   int          `yaml:"total"`
	OK      bool         `yaml:"ok"`
	Results []yamlResult `yaml:"results"`
}

type yamlResult struct {
	Name   string     `yaml:"name"`
	Status string     `yaml:"status"`
	Kind   string     `yaml:"kind,omitempty"`
	Lines  []yamlLine `yaml:"lines,omitempty"`
	Error  string     `yaml:"error,omitempty"`
}

type yamlLine struct {
	Status string `yaml:"status,omitempty"`
	Text   string `yaml:"text"`
}

// RenderYAML writes the report as a YAML document and returns the exit code.
func RenderYAML(w io.Writer, r suite.Report) (int, error) {
	doc := yamlReport{Passed: r.Passed, Total: r.Total, OK: r.OK(), Results: []yamlResult{}}
	for _, res := range r.Results {
		yr := yamlResult{Name: res.Name, Status: string(res.Status), Kind: string(res.Kind)}
		for _, l := range res.Details {
			yr.Lines = append(yr.Lines, yamlLine{Status: string(l.Status), Text: l.Text})
		}
		if res.Err != nil {
			yr.Error = res.Err.Error()
		}
		doc.Results = append(doc.Results, yr)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return 1, fmt.Errorf("failed to encode report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 1, fmt.Errorf("failed to encode report: %w", err)
	}
	return ExitCode(r), nil
}
