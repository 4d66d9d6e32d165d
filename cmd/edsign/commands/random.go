package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const maxRandomBytes = 1 << 20

func randomCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print bytes from the secure entropy source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 || n > maxRandomBytes {
				return fmt.Errorf("--bytes must be between 0 and %d", maxRandomBytes)
			}
			buf := make([]byte, n)
			appCtx.Entropy.Fill(buf, n)
			printf(cmd, "%s\n", encode(buf))
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "bytes", 32, "number of bytes")
	return cmd
}
