package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/featurecheck/pkg/suitefile"
)

var listYAML bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the checks that would run",
	Long: `List the registered checks, their files and marker counts.

With --yaml the suite is written as a manifest accepted by --suite, e.g.:
  featurecheck list --yaml > suite.yaml
  featurecheck --suite suite.yaml`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "write the suite as a YAML manifest")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cases, err := loadCases()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if listYAML {
		return suitefile.Write(w, cases)
	}

	for i, c := range cases {
		fmt.Fprintf(w, "%d. %s\n", i+1, c.Name)
		for _, f := range c.Files {
			n := 0
			for _, p := range f.Passes {
				n += len(p.Markers)
			}
			fmt.Fprintf(w, "     %s (%d markers)\n", f.Path, n)
		}
	}
	return nil
}
