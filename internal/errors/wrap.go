package errors

import "fmt"

// Wrap adds context to err. It returns nil if err is nil.
//
// The chain is preserved, so errors.Is keeps matching the sentinels:
//
//	if _, err := boundary.PreparePublicKey(buf); err != nil {
//	    return errors.Wrap(err, "verify")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
