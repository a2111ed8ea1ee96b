package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// solve <file>...: reconstruct f(0) from each share document.
func solveCmd() *cobra.Command {
	var secretOnly bool

	cmd := &cobra.Command{
		Use:   "solve <file>...",
		Short: "Reconstruct the secret constant term from share documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				rec, err := appCtx.Solver.SolveFile(path)
				if err != nil {
					return err
				}

				if secretOnly {
					if !rec.Exact {
						return fmt.Errorf("%s: secret is not an integer: %s", path, rec.Value)
					}
					fmt.Println(rec.Secret)
					continue
				}

				if len(args) > 1 {
					fmt.Printf("%s:\n", path)
				}
				fmt.Printf("f(0) = %s\n", rec.Value)
				if rec.Exact {
					fmt.Printf("Secret (C) = %s\n", rec.Secret)
				} else {
					// Never round: the exact rational is the full answer.
					fmt.Printf("Secret is not an integer. Exact value: %s\n", rec.Value)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&secretOnly, "secret-only", false,
		"print only the integer secret (fails when the result is not an integer)")
	return cmd
}
