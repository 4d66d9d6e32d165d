package commands

import (
	"github.com/spf13/cobra"

	"edsign/internal/crypto"
)

func pubkeyCmd() *cobra.Command {
	var secretKey string
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key embedded in a secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sk, err := decode("secret key", secretKey)
			if err != nil {
				return err
			}
			defer clear(sk)

			k, err := appCtx.Signature.NewSignator(sk)
			if err != nil {
				return err
			}
			defer k.Wipe()

			pk := k.PublicKey()
			printf(cmd, "Public key: %s\nFingerprint: %s\n", k.PublicKeyBase58(), crypto.Fingerprint(&pk))
			return nil
		},
	}
	cmd.Flags().StringVar(&secretKey, "secret-key", "", "secret key (seed || public key)")
	_ = cmd.MarkFlagRequired("secret-key")
	return cmd
}
