package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"edsign/internal/crypto"
	"edsign/internal/errors"
)

const (
	encHex    = "hex"
	encBase64 = "base64"
	encBase58 = "base58"
)

func checkEncoding(enc string) error {
	switch enc {
	case encHex, encBase64, encBase58:
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidArgument, "unknown encoding %q", enc)
}

func encode(b []byte) string {
	switch encoding {
	case encBase64:
		return crypto.B64(b)
	case encBase58:
		return crypto.EncodeBase58(b)
	default:
		return hex.EncodeToString(b)
	}
}

func decode(what, s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	var (
		b   []byte
		err error
	)
	switch encoding {
	case encBase64:
		b, err = crypto.DecodeB64(s)
	case encBase58:
		b, err = crypto.DecodeBase58(s)
	default:
		b, err = hex.DecodeString(s)
		if err != nil {
			err = errors.Wrap(errors.ErrDecode, err.Error())
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s", what)
	}
	return b, nil
}

// messageFlags are the two ways of passing a message.
type messageFlags struct {
	text string
	file string
}

func (m *messageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&m.text, "message", "", "message text")
	cmd.Flags().StringVar(&m.file, "message-file", "", `read the message from a file ("-" for stdin)`)
	cmd.MarkFlagsMutuallyExclusive("message", "message-file")
}

// given reports whether either message flag was set.
func (m *messageFlags) given(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("message") || cmd.Flags().Changed("message-file")
}

func (m *messageFlags) read(cmd *cobra.Command) ([]byte, error) {
	switch {
	case m.file == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		return b, errors.Wrap(err, "read message from stdin")
	case m.file != "":
		b, err := os.ReadFile(m.file)
		return b, errors.Wrap(err, "read message file")
	default:
		return []byte(m.text), nil
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
