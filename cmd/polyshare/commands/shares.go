package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"polyshare/internal/share"
)

// shares <file>: show which points a document would feed the interpolator.
func sharesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shares <file>",
		Short: "Show the decoded points selected from a share document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := appCtx.Source.Load(args[0])
			if err != nil {
				return err
			}
			points, err := share.Points(doc)
			if err != nil {
				return err
			}

			fmt.Printf("n = %d, k = %d, using %d share(s):\n", doc.N, doc.K, len(points))
			for _, p := range points {
				enc := doc.Shares[int(p.X.Int64())]
				fmt.Printf("  x = %s  base = %s  y = %s\n", p.X, enc.Base, p.Y)
			}
			return nil
		},
	}
}
