package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seblw/grocli/internal/config"
	"github.com/seblw/grocli/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or create grocli configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := config.WriteDefault()
		if err != nil {
			return err
		}
		ui.Ok("created " + p)
		fmt.Println("Edit store.base_url to point at your document store.")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := ui.Current()
		mask := cfg.Store.BaseURL
		if mask == "" {
			mask = t.Muted.Render("(not set)")
		}
		fmt.Println("store.base_url:        " + mask)
		fmt.Println("store.collection:      " + cfg.Store.Collection)
		fmt.Printf("store.timeout_seconds: %d\n", cfg.Store.TimeoutSeconds)
		fmt.Println("ui.theme:              " + cfg.UI.Theme)
		fmt.Println("logging.level:         " + cfg.Logging.Level)
		file := cfg.Logging.File
		if file == "" {
			file = t.Muted.Render("(disabled)")
		}
		fmt.Println("logging.file:          " + file)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
