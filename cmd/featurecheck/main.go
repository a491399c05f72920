package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vertti/featurecheck/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	verbose bool
	noColor bool

	logger = zap.NewNop()

	// newLogger builds the process logger. Replaced in tests.
	newLogger = func(level zapcore.Level) (*zap.Logger, error) {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		return config.Build()
	}
)

func main() {
	os.Exit(execute(os.Stderr))
}

// execute runs the root command and maps its outcome to a process exit code.
func execute(stderr io.Writer) int {
	defer func() { _ = logger.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "featurecheck",
	Short: "Verify that a feature's implementation markers are present",
	Long: `featurecheck inspects source and configuration files of an application and
confirms that the literal markers of a feature rollout are present.

Run without arguments to verify server-sent-events image generation
(use_sse for the image_api provider type) in the current directory.`,
	Version:           Version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: runSuite,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&suiteFile, "suite", "", "YAML suite manifest to run instead of the built-in suite")
}

func setup(_ *cobra.Command, _ []string) error {
	if noColor {
		output.DisableColor()
	}

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	l, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}
