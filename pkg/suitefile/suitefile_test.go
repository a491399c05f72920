package suitefile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/featurecheck/pkg/featurecase"
	"github.com/vertti/featurecheck/pkg/marker"
	"github.com/vertti/featurecheck/pkg/ssesuite"
)

const deployment = `version: 1
cases:
  - name: Deployment configuration
    files:
      - path: docker/image_providers.yaml
        passes:
          - markers:
              - text: "use_sse: false"
                label: documented use_sse default
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(deployment))
	require.NoError(t, err)

	want := []featurecase.Case{{
		Name: "Deployment configuration",
		Files: []featurecase.File{{
			Path: "docker/image_providers.yaml",
			Passes: []featurecase.Pass{{Markers: []marker.Spec{
				{Text: "use_sse: false", Label: "documented use_sse default"},
			}}},
		}},
	}}
	if diff := cmp.Diff(want, m.Cases); diff != "" {
		t.Errorf("Parse() cases mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "suite file is empty"},
		{"bad yaml", "version: [", "failed to parse suite YAML"},
		{"unknown field", "version: 1\nchecks: []\n", "field checks not found"},
		{"wrong version", "version: 2\ncases: []\n", "unsupported suite version 2"},
		{"no cases", "version: 1\ncases: []\n", "suite defines no cases"},
		{"unnamed case", "version: 1\ncases:\n  - files: []\n", "case 1: name is required"},
		{"duplicate case", "version: 1\ncases:\n" +
			"  - name: a\n    files: [{path: x, passes: [{markers: [{text: t, label: l}]}]}]\n" +
			"  - name: a\n    files: [{path: x, passes: [{markers: [{text: t, label: l}]}]}]\n", `case "a": duplicate name`},
		{"no files", "version: 1\ncases:\n  - name: a\n", `case "a": at least one file is required`},
		{"empty path", "version: 1\ncases:\n  - name: a\n    files: [{passes: [{markers: [{text: t, label: l}]}]}]\n", "file path is required"},
		{"no markers", "version: 1\ncases:\n  - name: a\n    files: [{path: x}]\n", "at least one marker is required"},
		{"empty named pass", "version: 1\ncases:\n  - name: a\n    files: [{path: x, passes: [{name: typed field, markers: []}, {markers: [{text: t, label: l}]}]}]\n",
			`case "a": x: pass "typed field" has no markers`},
		{"empty unnamed pass", "version: 1\ncases:\n  - name: a\n    files: [{path: x, passes: [{markers: [{text: t, label: l}]}, {}]}]\n",
			`case "a": x: pass "#2" has no markers`},
		{"empty marker", "version: 1\ncases:\n  - name: a\n    files: [{path: x, passes: [{markers: [{label: l}]}]}]\n", "marker text is required"},
		{"unlabeled marker", "version: 1\ncases:\n  - name: a\n    files: [{path: x, passes: [{markers: [{text: t}]}]}]\n", `marker "t" has no label`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(deployment), 0o600))

	m, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, m.Cases, 1)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_BuiltInSuiteIsAValidManifest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ssesuite.Cases()))

	m, err := Parse(buf.Bytes())
	require.NoError(t, err)
	if diff := cmp.Diff(ssesuite.Cases(), m.Cases); diff != "" {
		t.Errorf("written manifest differs from built-in suite (-want +got):\n%s", diff)
	}
}
