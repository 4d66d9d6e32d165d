// Package logging builds the zerolog logger used by the CLI.
//
// Output goes to stderr as JSON, or through zerolog.ConsoleWriter when stderr
// is a terminal. An optional lumberjack file sink receives the same events as
// JSON. Callers log public keys by fingerprint and never log secret keys or
// message contents.
package logging
