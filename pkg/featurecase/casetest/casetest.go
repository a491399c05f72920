// Package casetest builds artifact trees for testing feature cases.
package casetest

import (
	"strings"

	"github.com/vertti/featurecheck/pkg/featurecase"
)

// Tree returns file contents (slash path -> text) that satisfy every marker
// of every case. Markers are written one per line.
func Tree(cases []featurecase.Case) map[string]string {
	lines := map[string][]string{}
	var order []string
	for _, c := range cases {
		for _, f := range c.Files {
			if _, ok := lines[f.Path]; !ok {
				order = append(order, f.Path)
				lines[f.Path] = []string{}
			}
			for _, p := range f.Passes {
				for _, m := range p.Markers {
					lines[f.Path] = append(lines[f.Path], m.Text)
				}
			}
		}
	}

	tree := make(map[string]string, len(order))
	for _, path := range order {
		tree[path] = strings.Join(lines[path], "\n") + "\n"
	}
	return tree
}

// Without returns a copy of tree with every occurrence of text removed from path.
func Without(tree map[string]string, path, text string) map[string]string {
	out := make(map[string]string, len(tree))
	for k, v := range tree {
		out[k] = v
	}
	out[path] = strings.ReplaceAll(out[path], text, "")
	return out
}

// WithoutFile returns a copy of tree that omits path.
func WithoutFile(tree map[string]string, path string) map[string]string {
	out := make(map[string]string, len(tree))
	for k, v := range tree {
		if k != path {
			out[k] = v
		}
	}
	return out
}
