//go:build !unix

package entropy

import (
	"crypto/rand"
	"io"

	"edsign/internal/errors"
)

// stdReader uses crypto/rand, which wraps the OS generator on these targets.
type stdReader struct{}

func openPlatform(string) (reader, error) { return stdReader{}, nil }

func (stdReader) fill(p []byte) error {
	n, err := io.ReadFull(rand.Reader, p)
	if err != nil {
		return errors.Wrapf(errors.ErrEntropyUnavailable, "crypto/rand: read %d of %d bytes: %v", n, len(p), err)
	}
	return nil
}

func (stdReader) close() error { return nil }
