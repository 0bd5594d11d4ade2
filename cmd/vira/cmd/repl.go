package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xiam/vira/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse statements interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		r := repl.New(out, newPrinter(out))
		r.HistoryPath = repl.DefaultHistoryPath()

		logger.Debug("starting repl", "history", r.HistoryPath)
		return r.Run()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
