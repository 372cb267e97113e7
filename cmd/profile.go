package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataquery-cli/internal/analysis"
	"github.com/KaramelBytes/dataquery-cli/internal/loader"
)

var (
	profOutputPath string
	profSampleRows int
	profQuiet      bool
)

type profileOutput struct {
	File     string                   `json:"file"`
	Profiles []analysis.ColumnProfile `json:"profiles"`
	Report   *analysis.Report         `json:"report"`
}

var profileCmd = &cobra.Command{
	Use:   "profile <files...>",
	Short: "Infer column types and summarize one or more CSV files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := expandInputs(args)
		if err != nil {
			return err
		}
		if profOutputPath != "" && len(files) > 1 {
			return fmt.Errorf("--output accepts a single input file, got %d", len(files))
		}
		sampleRows := 5
		if cfg != nil {
			sampleRows = cfg.SampleRows
		}
		if cmd.Flags().Changed("sample-rows") {
			sampleRows = profSampleRows
		}

		out := cmd.OutOrStdout()
		total := len(files)
		for i, path := range files {
			if total > 1 && !profQuiet {
				fmt.Fprintf(out, "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			t, err := loader.LoadFile(path, datasetOptions())
			if err != nil {
				return err
			}
			rep := analysis.Profile(t, sampleRows)
			res := profileOutput{File: path, Profiles: analysis.AnalyzeColumns(t), Report: rep}
			if err := writeOutput(rep.Markdown()+"\n", res, outputOptions{
				Writer:     out,
				OutputPath: profOutputPath,
				Quiet:      profQuiet,
			}); err != nil {
				return err
			}
		}
		return nil
	},
}

// expandInputs resolves globs, keeps literal paths that exist, drops
// duplicates and sorts the result.
func expandInputs(args []string) ([]string, error) {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 {
			if _, err := os.Stat(arg); err != nil {
				return nil, fmt.Errorf("no input files matched %s", arg)
			}
			matches = []string{arg}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Slice(files, func(i, j int) bool { return strings.ToLower(files[i]) < strings.ToLower(files[j]) })
	return files, nil
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVarP(&profOutputPath, "output", "o", "", "optional path to write the profile")
	profileCmd.Flags().IntVar(&profSampleRows, "sample-rows", 5, "number of sample rows to include (overrides config)")
	profileCmd.Flags().BoolVar(&profQuiet, "quiet", false, "suppress progress and non-essential output")
}
