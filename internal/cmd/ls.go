package cmd

import (
	"github.com/spf13/cobra"

	"github.com/seblw/grocli/internal/tui"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Open the interactive list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := newReconciler()
		if err != nil {
			return err
		}
		return tui.Run(rec)
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
