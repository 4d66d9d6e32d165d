package entropy

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"edsign/internal/domain"
	"edsign/internal/errors"
	"edsign/internal/util/memzero"
)

// DefaultDevice is the randomness device used where getrandom(2) is not.
const DefaultDevice = "/dev/urandom"

// reader is the per-platform capability. fill must populate all of p or
// return an error.
type reader interface {
	fill(p []byte) error
	close() error
}

// FatalError describes an entropy failure. It is only ever delivered to a
// FatalHandler, never returned to a Fill caller.
type FatalError struct {
	Op  string // "open", "read" or "fill"
	Err error
}

func (e *FatalError) Error() string { return "entropy " + e.Op + ": " + e.Err.Error() }

func (e *FatalError) Unwrap() error { return e.Err }

// FatalHandler runs before the process exits on an entropy failure. It is the
// hook for flushing logs and telemetry; the process exits even if it returns.
type FatalHandler func(*FatalError)

// Source fills buffers from the platform randomness facility.
type Source struct {
	device  string
	onFatal FatalHandler
	logger  *zerolog.Logger

	open func(device string) (reader, error)
	exit func(code int)

	once    sync.Once
	r       reader
	initErr error
	closed  atomic.Bool
}

var errClosed = errors.Wrap(errors.ErrEntropyUnavailable, "source closed")

// Option configures a Source.
type Option func(*Source)

// WithDevice sets the randomness device used by the device reader.
func WithDevice(path string) Option {
	return func(s *Source) {
		if path != "" {
			s.device = path
		}
	}
}

// WithLogger sets the logger used by the default fatal handler.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Source) { s.logger = &l }
}

// WithFatalHandler replaces the default handler, which logs at fatal level.
func WithFatalHandler(h FatalHandler) Option {
	return func(s *Source) {
		if h != nil {
			s.onFatal = h
		}
	}
}

// New returns a Source. The facility is not touched until the first Fill.
func New(opts ...Option) *Source {
	s := &Source{
		device: DefaultDevice,
		open:   openPlatform,
		exit:   os.Exit,
	}
	s.onFatal = s.logFatal
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fill overwrites buf[:n] with secure random bytes. It returns only on
// success.
func (s *Source) Fill(buf []byte, n int) {
	if n < 0 || n > len(buf) {
		s.fatal(buf, &FatalError{
			Op:  "fill",
			Err: errors.Wrapf(errors.ErrInvalidArgument, "length %d for a %d-byte buffer", n, len(buf)),
		})
		return
	}
	dst := buf[:n]

	s.once.Do(func() { s.r, s.initErr = s.open(s.device) })
	if s.initErr != nil {
		s.fatal(dst, &FatalError{Op: "open", Err: s.initErr})
		return
	}
	if s.closed.Load() {
		s.fatal(dst, &FatalError{Op: "open", Err: errClosed})
		return
	}
	if n == 0 {
		return
	}
	if err := s.r.fill(dst); err != nil {
		s.fatal(dst, &FatalError{Op: "read", Err: err})
	}
}

// Read implements io.Reader. It always fills p completely.
func (s *Source) Read(p []byte) (int, error) {
	s.Fill(p, len(p))
	return len(p), nil
}

// Close releases the cached facility handle. It is for teardown: it waits for
// an in-flight first open, but must not run concurrently with a Fill that is
// already reading. Any Fill after Close is fatal. Close is idempotent.
func (s *Source) Close() error {
	s.once.Do(func() { s.initErr = errClosed })
	if s.closed.Swap(true) || s.r == nil {
		return nil
	}
	return s.r.close()
}

func (s *Source) fatal(dst []byte, fe *FatalError) {
	memzero.Zero(dst)
	s.onFatal(fe)
	s.exit(1)
}

func (s *Source) logFatal(fe *FatalError) {
	logger := s.logger
	if logger == nil {
		logger = &log.Logger
	}
	// WithLevel instead of Fatal: the exit happens in Source.fatal.
	logger.WithLevel(zerolog.FatalLevel).
		Str("component", "entropy").
		Str("op", fe.Op).
		Err(fe.Err).
		Msg("entropy source failed, terminating")
}

var (
	defaultOnce   sync.Once
	defaultSource *Source
)

// Default returns the process-wide Source.
func Default() *Source {
	defaultOnce.Do(func() { defaultSource = New() })
	return defaultSource
}

// Fill fills buf[:n] from the process-wide Source.
func Fill(buf []byte, n int) { Default().Fill(buf, n) }

// Compile-time assertions.
var (
	_ domain.EntropySource = (*Source)(nil)
	_ io.Reader            = (*Source)(nil)
)
