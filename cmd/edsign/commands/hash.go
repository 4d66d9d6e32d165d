package commands

import (
	"github.com/spf13/cobra"

	"edsign/internal/crypto"
)

// hash prints the uppercase hex SHA-256 used for document hashes.
func hashCmd() *cobra.Command {
	var msg messageFlags
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the SHA-256 of a message as uppercase hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := msg.read(cmd)
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", crypto.Sha256Hex(m))
			return nil
		},
	}
	msg.register(cmd)
	return cmd
}
