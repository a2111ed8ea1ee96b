package commands

import (
	"github.com/spf13/cobra"

	"polyshare/internal/app"
)

var appCtx *app.Wire

func Execute() error {
	root := &cobra.Command{
		Use:           "polyshare",
		Short:         "Reconstruct polynomial secrets from base-encoded shares",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appCtx = app.NewWire(app.Config{})
		},
	}

	root.AddCommand(solveCmd(), sharesCmd(), convertCmd())
	return root.Execute()
}
