package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"
	"github.com/mattn/go-runewidth"

	"github.com/vertti/featurecheck/pkg/check"
	"github.com/vertti/featurecheck/pkg/suite"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		DisableColor()
	}
}

// DisableColor turns off ANSI colors for all subsequent output.
func DisableColor() {
	green, red, dim, reset = "", "", "", ""
}

// ExitCode returns 0 if every check in the report passed, 1 otherwise.
func ExitCode(r suite.Report) int {
	if r.OK() {
		return 0
	}
	return 1
}

// Render writes one section per check, a summary, a tally and a verdict,
// and returns the process exit code for the report.
func Render(w io.Writer, r suite.Report) int {
	for _, res := range r.Results {
		PrintResult(w, res)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	width := 0
	for _, res := range r.Results {
		width = max(width, runewidth.StringWidth(res.Name))
	}
	for _, res := range r.Results {
		name := runewidth.FillRight(res.Name, width)
		if res.OK() {
			fmt.Fprintf(w, "  %s  %sOK%s\n", name, green, reset)
		} else {
			fmt.Fprintf(w, "  %s  %sFAIL%s %s(%s)%s\n", name, red, reset, dim, res.Kind, reset)
		}
	}

	fmt.Fprintf(w, "\n%d/%d checks passed\n", r.Passed, r.Total)
	if r.OK() {
		fmt.Fprintf(w, "%sAll checks passed.%s\n", green, reset)
	} else {
		fmt.Fprintf(w, "%s%d of %d checks failed.%s\n", red, r.Total-r.Passed, r.Total, reset)
	}

	return ExitCode(r)
}

// PrintResult outputs a check result with colored status.
func PrintResult(w io.Writer, r check.Result) {
	indent := "     "
	if r.OK() {
		fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
		indent = "       "
	}
	for _, d := range r.Details {
		fmt.Fprintf(w, "%s%s\n", indent, formatLine(d))
	}
}

func formatLine(l check.Line) string {
	switch l.Status {
	case check.StatusOK:
		return fmt.Sprintf("%s✓%s %s", green, reset, l.Text)
	case check.StatusFail:
		return fmt.Sprintf("%s✗%s %s", red, reset, l.Text)
	default:
		return formatLabel(l.Text)
	}
}

// formatLabel dims the "label:" prefix of an informational line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ":")
	if !ok || dim == "" {
		return s
	}
	return fmt.Sprintf("%s%s:%s%s", dim, label, reset, rest)
}
