// Package marker tests artifact text for literal implementation markers.
package marker

import "strings"

// Spec is a literal fragment that must appear in an artifact.
type Spec struct {
	Text  string `yaml:"text"`  // exact substring to find
	Label string `yaml:"label"` // human-readable description
}

// Outcome records whether one Spec was found.
type Outcome struct {
	Spec    Spec
	Present bool
}

// Check evaluates every spec against text, in order.
// Matching is exact and case-sensitive; allPresent is true only if every
// spec was found (and for an empty list).
func Check(text string, specs []Spec) (outcomes []Outcome, allPresent bool) {
	outcomes = make([]Outcome, 0, len(specs))
	allPresent = true
	for _, s := range specs {
		present := strings.Contains(text, s.Text)
		outcomes = append(outcomes, Outcome{Spec: s, Present: present})
		allPresent = allPresent && present
	}
	return outcomes, allPresent
}

// Missing returns the specs that were not found, preserving order.
func Missing(outcomes []Outcome) []Spec {
	var missing []Spec
	for _, o := range outcomes {
		if !o.Present {
			missing = append(missing, o.Spec)
		}
	}
	return missing
}
