//go:build linux

package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edsign/internal/util/memzero"
)

func TestGetrandomReader_FillsPastSingleCallLimit(t *testing.T) {
	// getrandom(2) returns at most 32MiB-1 per call and may return less
	// for large requests; fill must loop until the buffer is full.
	buf := make([]byte, 33<<20)
	require.NoError(t, getrandomReader{}.fill(buf))
	assert.False(t, memzero.IsZero(buf[len(buf)-4096:]))
}

func TestOpenPlatform_Linux(t *testing.T) {
	r, err := openPlatform(DefaultDevice)
	require.NoError(t, err)
	defer func() { _ = r.close() }()

	buf := make([]byte, 32)
	require.NoError(t, r.fill(buf))
	assert.False(t, memzero.IsZero(buf))
}
