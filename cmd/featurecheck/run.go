package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertti/featurecheck/pkg/artifact"
	"github.com/vertti/featurecheck/pkg/featurecase"
	"github.com/vertti/featurecheck/pkg/output"
	"github.com/vertti/featurecheck/pkg/ssesuite"
	"github.com/vertti/featurecheck/pkg/suite"
	"github.com/vertti/featurecheck/pkg/suitefile"
)

// ErrCheckFailed is returned when at least one check fails.
var ErrCheckFailed = errors.New("check failed")

var (
	suiteFile string
	rootDir   string
	format    string
	parallel  int
)

func init() {
	rootCmd.Flags().StringVar(&rootDir, "root", ".", "directory the artifact paths are relative to")
	rootCmd.Flags().StringVar(&format, "format", "text", "report format: text or yaml")
	rootCmd.Flags().IntVar(&parallel, "parallel", 0, "run up to N checks concurrently (0 or 1: sequential)")
}

// loadCases returns the manifest's cases when --suite is set, else the built-in suite.
func loadCases() ([]featurecase.Case, error) {
	if suiteFile == "" {
		return ssesuite.Cases(), nil
	}
	m, err := suitefile.ParseFile(suiteFile)
	if err != nil {
		return nil, err
	}
	return m.Cases, nil
}

// runSuite executes every check, renders the report, and returns
// ErrCheckFailed if any check failed so the process exits with code 1.
func runSuite(cmd *cobra.Command, _ []string) error {
	if err := requireOneOf("--format", format, "text", "yaml"); err != nil {
		return err
	}
	if err := requireNonNegative("--parallel", parallel); err != nil {
		return err
	}

	cases, err := loadCases()
	if err != nil {
		return err
	}

	s, err := featurecase.Suite(cases, artifact.NewReader(rootDir))
	if err != nil {
		return err
	}

	logger.Debug("running suite",
		zap.String("root", rootDir),
		zap.String("suite", suiteFile),
		zap.Strings("checks", s.Names()),
		zap.Int("parallel", parallel))

	report := (&suite.Runner{Logger: logger, Parallel: parallel}).Run(s)

	var code int
	switch format {
	case "yaml":
		code, err = output.RenderYAML(cmd.OutOrStdout(), report)
		if err != nil {
			return err
		}
	default:
		code = output.Render(cmd.OutOrStdout(), report)
	}

	if code != 0 {
		logger.Debug("suite failed", zap.Int("passed", report.Passed), zap.Int("total", report.Total), zap.Error(report.Err()))
		return ErrCheckFailed
	}
	return nil
}
