package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seblw/grocli/internal/model"
	"github.com/seblw/grocli/internal/shoplist"
	"github.com/seblw/grocli/internal/ui"
)

var (
	addQty      int
	addCategory string
)

var addCmd = &cobra.Command{
	Use:   "add <name...>",
	Short: "Add a new item (name can be multiple words)",
	Example: `  grocli add "Milk"
  grocli add Bananas -q 5 -c fruit`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catID, err := categoryID(addCategory)
		if err != nil {
			return err
		}
		rec, err := newReconciler()
		if err != nil {
			return err
		}
		item, err := rec.Add(cmd.Context(), strings.Join(args, " "), addQty, catID)
		if err != nil {
			var verr *shoplist.ValidationError
			if errors.As(err, &verr) {
				return &usageError{verr.Error()}
			}
			return err
		}
		ui.Ok(fmt.Sprintf("added %s ×%d (%s)", item.Name, item.Quantity, item.Category.Name))
		return nil
	},
}

// categoryID checks the flag value against the registry instead of relying on
// Lookup's silent fallback to Other; a typo should be an error here.
func categoryID(raw string) (model.CategoryID, error) {
	id := model.CategoryID(strings.ToLower(strings.TrimSpace(raw)))
	for _, c := range model.Categories() {
		if c.ID == id {
			return id, nil
		}
	}
	return "", &usageError{fmt.Sprintf("unknown category %q (see `grocli categories`)", raw)}
}

func init() {
	addCmd.Flags().IntVarP(&addQty, "qty", "q", 1, "quantity")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "other", "category id (see `grocli categories`)")
	rootCmd.AddCommand(addCmd)
}
