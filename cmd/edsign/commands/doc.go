// Package commands defines the edsign CLI and wires dependencies for subcommands.
//
// Commands
//
//   - sign     Produce signature || message, or a detached signature
//   - verify   Check a signed message or detached signature (exit 1 if invalid)
//   - random   Print bytes from the secure entropy source
//   - pubkey   Print the public key embedded in a secret key
//   - hash     Print the uppercase hex SHA-256 of a message
//   - config   Print the effective configuration as YAML
//
// Keys, signatures and signed messages are read and printed in the encoding
// chosen with --encoding (hex, base64 or base58). Messages are raw bytes.
//
// # Implementation
//
// The root command loads configuration, builds the logger and the app
// dependency graph (entropy source, primitive, signature service) before any
// subcommand runs, so handlers share one app context.
package commands
