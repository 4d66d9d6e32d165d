package interfaces

// EntropySource fills buffers with secure random bytes.
//
// Fill never reports an error: if buf[:n] cannot be fully populated from the
// platform facility the process terminates.
type EntropySource interface {
	Fill(buf []byte, n int)
}
