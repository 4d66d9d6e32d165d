package app

import (
	stderrors "errors"

	"github.com/rs/zerolog"

	"edsign/internal/config"
	"edsign/internal/crypto"
	"edsign/internal/domain"
	"edsign/internal/entropy"
	"edsign/internal/errors"
	"edsign/internal/logging"
	"edsign/internal/services/signature"
)

// App bundles the services the CLI commands use.
type App struct {
	Config    *config.Config
	Log       *logging.Logger
	Entropy   *entropy.Source
	Primitive domain.Primitive
	Signature *signature.Service
}

// New constructs the dependency graph from cfg. log may be nil, in which case
// nothing is logged.
func New(cfg *config.Config, log *logging.Logger) (*App, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if log == nil {
		log = &logging.Logger{Logger: zerolog.Nop()}
	}

	// Entropy source: opened lazily on first use, fatal path logs first.
	src := entropy.New(
		entropy.WithDevice(cfg.Entropy.Device),
		entropy.WithLogger(log.Logger),
	)

	prim, err := crypto.ForPolicy(cfg.VerifyPolicy)
	if err != nil {
		return nil, errors.Wrap(err, "select primitive")
	}

	svc := signature.New(prim,
		signature.WithLogger(log.Logger),
		signature.WithStrictSecretKey(cfg.StrictSecretKey),
		signature.WithMessageBinding(cfg.MessageBinding),
	)

	log.Debug().
		Str("verify_policy", cfg.VerifyPolicy.String()).
		Bool("strict_secret_key", cfg.StrictSecretKey).
		Bool("message_binding", cfg.MessageBinding).
		Str("entropy_device", cfg.Entropy.Device).
		Msg("app wired")

	return &App{
		Config:    cfg,
		Log:       log,
		Entropy:   src,
		Primitive: prim,
		Signature: svc,
	}, nil
}

// Close releases the entropy handle and the log file sink.
func (a *App) Close() error {
	return stderrors.Join(a.Entropy.Close(), a.Log.Close())
}
