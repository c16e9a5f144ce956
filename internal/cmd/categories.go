package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seblw/grocli/internal/model"
	"github.com/seblw/grocli/internal/ui"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available categories",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := ui.Current()
		for _, c := range model.Categories() {
			fmt.Printf("%s %-12s %s\n", ui.Dot(c.Color), c.Name, t.Muted.Render(string(c.ID)))
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
