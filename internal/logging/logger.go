package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"edsign/internal/config"
	"edsign/internal/errors"
)

var globalMu sync.Mutex //nolint:gochecknoglobals // guards log.Logger

// Logger is the process logger plus the file sink it owns.
type Logger struct {
	zerolog.Logger
	file io.WriteCloser
}

// New builds a logger writing to out and, when cfg.File is set, to a rotating
// log file.
func New(cfg config.LogConfig, out io.Writer) (*Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		return nil, errors.Wrapf(errors.ErrConfigInvalid, "log level %q", cfg.Level)
	}

	console := selectOutput(cfg.Format, out)
	l := &Logger{}
	writer := console
	if cfg.File != "" {
		fw, err := newFileWriter(cfg)
		if err != nil {
			return nil, err
		}
		l.file = fw
		writer = zerolog.MultiLevelWriter(console, fw)
	}

	l.Logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return l, nil
}

// Close closes the file sink, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// SetGlobal makes l the logger behind github.com/rs/zerolog/log.
func SetGlobal(l zerolog.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	log.Logger = l
}

func selectOutput(format string, out io.Writer) io.Writer {
	switch format {
	case config.FormatJSON:
		return out
	case config.FormatConsole:
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: !isTerminal(out)}
	}
	if isTerminal(out) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newFileWriter(cfg config.LogConfig) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}, nil
}
