package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"edsign/internal/domain"
)

// verify exits non-zero when the signature does not hold. Without a message
// flag, a signed message is checked against the message it carries.
func verifyCmd() *cobra.Command {
	var (
		publicKey string
		signed    string
		msg       messageFlags
		detached  bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signed message or detached signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := decode("public key", publicKey)
			if err != nil {
				return err
			}
			s, err := decode("signature", signed)
			if err != nil {
				return err
			}

			var m []byte
			switch {
			case msg.given(cmd):
				if m, err = msg.read(cmd); err != nil {
					return err
				}
			case detached:
				return fmt.Errorf("--detached needs --message or --message-file")
			case len(s) >= domain.SignatureSize:
				m = s[domain.SignatureSize:]
			}

			var ok bool
			if detached {
				ok, err = appCtx.Signature.VerifyDetached(m, s, pk)
			} else {
				ok, err = appCtx.Signature.Verify(m, s, pk)
			}
			if err != nil {
				return err
			}
			if !ok {
				printf(cmd, "invalid\n")
				return ErrSignatureInvalid
			}
			printf(cmd, "valid\n")
			return nil
		},
	}
	cmd.Flags().StringVar(&publicKey, "public-key", "", "32-byte public key")
	cmd.Flags().StringVar(&signed, "signed", "", "signed message, or signature with --detached")
	cmd.Flags().BoolVar(&detached, "detached", false, "treat --signed as a bare 64-byte signature")
	msg.register(cmd)
	_ = cmd.MarkFlagRequired("public-key")
	_ = cmd.MarkFlagRequired("signed")
	return cmd
}
