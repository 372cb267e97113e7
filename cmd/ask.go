package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataquery-cli/internal/loader"
	"github.com/KaramelBytes/dataquery-cli/internal/session"
)

var askOutputPath string

var askCmd = &cobra.Command{
	Use:   "ask <file.csv> <question...>",
	Short: "Answer one plain-English question about a CSV file",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loader.LoadFile(args[0], datasetOptions())
		if err != nil {
			return err
		}
		s := session.New(t, newInterpreter(), log)
		ex := s.Ask(strings.Join(args[1:], " "))
		return writeOutput(ex.Result.Text(), ex, outputOptions{Writer: cmd.OutOrStdout(), OutputPath: askOutputPath})
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askOutputPath, "output", "o", "", "optional path to write the answer")
}
