package commands

import (
	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	var (
		secretKey string
		msg       messageFlags
		detached  bool
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a 64-byte secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sk, err := decode("secret key", secretKey)
			if err != nil {
				return err
			}
			defer clear(sk)

			m, err := msg.read(cmd)
			if err != nil {
				return err
			}

			k, err := appCtx.Signature.NewSignator(sk)
			if err != nil {
				return err
			}
			defer k.Wipe()

			switch {
			case detached && encoding == encBase64:
				sig, err := k.SignBase64(m)
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", sig)
			case detached:
				sig, err := k.SignDetached(m)
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", encode(sig))
			default:
				sm, err := k.Sign(m)
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", encode(sm))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&secretKey, "secret-key", "", "secret key (seed || public key)")
	cmd.Flags().BoolVar(&detached, "detached", false, "print only the 64-byte signature")
	msg.register(cmd)
	_ = cmd.MarkFlagRequired("secret-key")
	return cmd
}
