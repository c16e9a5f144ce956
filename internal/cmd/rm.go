package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seblw/grocli/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:   "rm <index>",
	Short: "Remove the item at a 1-based index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return &usageError{"rm: not a number: " + args[0]}
		}
		rec, err := newReconciler()
		if err != nil {
			return err
		}
		if err := rec.Load(cmd.Context()); err != nil {
			return err
		}
		items := rec.Items()
		if n < 1 || n > len(items) {
			return &usageError{fmt.Sprintf("index out of range: have %d, got %d", len(items), n)}
		}
		item := items[n-1]
		if err := rec.Remove(cmd.Context(), item); err != nil {
			return err
		}
		ui.Ok("removed " + item.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
