package commands

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"edsign/internal/app"
	"edsign/internal/config"
	"edsign/internal/logging"
)

// ErrSignatureInvalid is returned by verify when the signature does not hold.
var ErrSignatureInvalid = stderrors.New("signature invalid")

var (
	cfgFile  string
	encoding string
	appCtx   *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCmd()
	defer closeApp()
	return root.Execute()
}

// NewRootCmd builds the command tree. Only one tree may run at a time.
func NewRootCmd() *cobra.Command {
	cfgFile, encoding, appCtx = "", encHex, nil

	root := &cobra.Command{
		Use:           "edsign",
		Short:         "Ed25519 signed-message tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := checkEncoding(encoding); err != nil {
				return err
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			l, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logging.SetGlobal(l.Logger)

			a, err := app.New(cfg, l)
			if err != nil {
				_ = l.Close()
				return err
			}
			appCtx = a
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ~/.edsign/config.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("log-format", "", "log format: auto, json or console")
	pf.String("policy", "", "verify policy: nacl or zip215")
	pf.StringVar(&encoding, "encoding", encHex, "encoding of keys and signatures: hex, base64 or base58")

	root.AddCommand(signCmd(), verifyCmd(), randomCmd(), pubkeyCmd(), hashCmd(), configCmd())
	return root
}

func closeApp() {
	if appCtx != nil {
		_ = appCtx.Close()
		appCtx = nil
	}
}
