package entropy

import (
	stderrors "errors"
	"io"
	"os"

	"edsign/internal/errors"
)

// deviceReader reads from a randomness character device such as /dev/urandom.
type deviceReader struct {
	path string
	f    *os.File
}

// openDeviceReader keeps a failed open from becoming a non-nil reader.
func openDeviceReader(path string) (reader, error) {
	d, err := openDevice(path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func openDevice(path string) (*deviceReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrEntropyUnavailable, "open %s: %v", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(errors.ErrEntropyUnavailable, "stat %s: %v", path, err)
	}
	if fi.Mode()&os.ModeCharDevice == 0 {
		_ = f.Close()
		return nil, errors.Wrapf(errors.ErrEntropyUnavailable, "%s is not a character device", path)
	}
	return &deviceReader{path: path, f: f}, nil
}

func (d *deviceReader) fill(p []byte) error {
	n, err := io.ReadFull(d.f, p)
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, io.EOF), stderrors.Is(err, io.ErrUnexpectedEOF):
		return errors.Wrapf(errors.ErrShortRead, "%s: read %d of %d bytes", d.path, n, len(p))
	default:
		return errors.Wrapf(errors.ErrEntropyUnavailable, "read %s: %v", d.path, err)
	}
}

func (d *deviceReader) close() error { return d.f.Close() }
