//go:build linux

package entropy

import (
	stderrors "errors"

	"golang.org/x/sys/unix"

	"edsign/internal/errors"
)

type getrandomReader struct{}

func openPlatform(device string) (reader, error) {
	var b [1]byte
	_, err := unix.Getrandom(b[:], unix.GRND_NONBLOCK)
	switch {
	case err == nil, stderrors.Is(err, unix.EAGAIN), stderrors.Is(err, unix.EINTR):
		// EAGAIN only means the pool is not seeded yet; blocking reads wait for it.
		return getrandomReader{}, nil
	case stderrors.Is(err, unix.ENOSYS), stderrors.Is(err, unix.EPERM):
		return openDeviceReader(device)
	default:
		return nil, errors.Wrapf(errors.ErrEntropyUnavailable, "getrandom: %v", err)
	}
}

func (getrandomReader) fill(p []byte) error {
	for len(p) > 0 {
		n, err := unix.Getrandom(p, 0)
		if stderrors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return errors.Wrapf(errors.ErrEntropyUnavailable, "getrandom: %v", err)
		}
		if n <= 0 {
			return errors.Wrapf(errors.ErrShortRead, "getrandom returned %d with %d bytes left", n, len(p))
		}
		p = p[n:]
	}
	return nil
}

func (getrandomReader) close() error { return nil }
