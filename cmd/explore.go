package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataquery-cli/internal/loader"
	"github.com/KaramelBytes/dataquery-cli/internal/query"
	"github.com/KaramelBytes/dataquery-cli/internal/session"
)

var exploreCmd = &cobra.Command{
	Use:   "explore <file.csv>",
	Short: "Ask questions about a CSV file interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loader.LoadFile(args[0], datasetOptions())
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		s := session.New(t, newInterpreter(), log)
		if err := s.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func newInterpreter() *query.Interpreter {
	return query.New(log)
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
