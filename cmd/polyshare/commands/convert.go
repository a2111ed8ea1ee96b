package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"polyshare/internal/radix"
)

// convert <value>: re-encode an arbitrary-precision integer between bases.
func convertCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Re-encode an integer from one base to another",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := radix.Parse(args[0], from)
			if err != nil {
				return err
			}
			out, err := radix.Format(x, to)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 10, "base of the input value")
	cmd.Flags().IntVar(&to, "to", 10, "base to encode the output in")
	return cmd
}
