// Package cmd wires the grocli command tree.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seblw/grocli/internal/config"
	"github.com/seblw/grocli/internal/logging"
	"github.com/seblw/grocli/internal/shoplist"
	"github.com/seblw/grocli/internal/store/webstore"
	"github.com/seblw/grocli/internal/ui"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	themeFlag string
)

// usageError marks problems the user can fix by calling the command
// differently. Execute maps it to exit code 2.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

var rootCmd = &cobra.Command{
	Use:   "grocli",
	Short: "grocli - a tiny shopping list",
	Long: `grocli keeps a shopping list in a remote JSON document store.

Run "grocli ls" for the interactive list, or use add/rm for one-shot changes.
Point it at a store with "grocli config init" or GROCLI_STORE_BASE_URL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if themeFlag != "" {
			cfg.UI.Theme = themeFlag
		}
		ui.SetTheme(cfg.UI.Theme)
		logger, err = logging.New(cfg.Logging)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", `color theme ("classic" or "mono")`)
}

// Execute runs the command tree and returns an exit code
// (0 ok, 1 error, 2 usage).
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue *usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

// newReconciler builds the store client and reconciler from config.
func newReconciler() (*shoplist.Reconciler, error) {
	if cfg.Store.BaseURL == "" {
		return nil, errors.New("store.base_url is not set; run `grocli config init` and edit the config, or set GROCLI_STORE_BASE_URL")
	}
	client := webstore.New(cfg.Store.BaseURL, cfg.Store.Collection, cfg.Timeout(), logger)
	return shoplist.New(client, logger), nil
}
