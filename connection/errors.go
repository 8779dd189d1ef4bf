package connection

import "errors"

// Common errors shared by every driver implementation.
var (
	// Nil is returned when a key, field, or member does not exist. Both
	// drivers translate their native "no value" sentinel to this error so
	// callers match a single value.
	Nil = errors.New("rediskit: nil")

	// ErrClosed is returned when the client has been closed.
	ErrClosed = errors.New("rediskit: client is closed")

	// ErrTxFailed is returned by Tx.Exec when the transaction was aborted
	// because a watched key changed.
	ErrTxFailed = errors.New("rediskit: transaction failed")

	// ErrEmptyKey is returned by fail-fast argument checks on an empty
	// key, stream, or channel name.
	ErrEmptyKey = errors.New("rediskit: key cannot be empty")
)

// ValidateKey fail-fasts on an empty key, stream, or channel name. Shared
// by the driver adapters so both reject the same inputs before touching the
// wire.
func ValidateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}

// IsNilError checks if the error is a "value does not exist" error.
func IsNilError(err error) bool {
	return errors.Is(err, Nil)
}

// IsClosedError checks if the error is a "client is closed" error.
func IsClosedError(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsTxFailedError checks if the error is a watch-aborted transaction error.
func IsTxFailedError(err error) bool {
	return errors.Is(err, ErrTxFailed)
}
