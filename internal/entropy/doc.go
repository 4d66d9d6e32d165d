// Package entropy is the process-wide source of cryptographically secure
// random bytes.
//
// Fill is fail-closed. If the platform facility cannot be opened, returns an
// error, or cannot populate the full requested length, the destination is
// wiped, a *FatalError is handed to the configured FatalHandler and the
// process exits with status 1. There is no partial success and no fallback to
// a weaker generator; callers use the output as key and nonce material.
//
// # Platforms
//
// The facility is picked at build time:
//
//   - linux: getrandom(2); kernels without it (ENOSYS) or sandboxes that
//     deny it (EPERM) use the device reader instead
//   - other unix: a character device (default /dev/urandom), opened once
//   - everything else: crypto/rand
//
// The facility is acquired lazily on first use under a sync.Once and cached
// for the life of the Source.
package entropy
