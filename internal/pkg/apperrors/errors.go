package apperrors

import "errors"

// Standard application errors
var (
	// ErrProviderNotFound is returned when no wallet connector or
	// request-capable provider handle is available.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrNotConnected is returned when a wallet request is issued before the
	// bridge session was established.
	ErrNotConnected = errors.New("wallet bridge not connected")

	// ErrWalletRejected is returned when the wallet extension rejects a
	// request (user decline, extension error, malformed params).
	ErrWalletRejected = errors.New("wallet rejected request")

	// ErrInvalidInput is returned when the input provided by the client is invalid.
	ErrInvalidInput = errors.New("invalid input provided")

	// ErrExternalServiceFailure is returned when an interaction with an external service fails.
	ErrExternalServiceFailure = errors.New("external service interaction failed")

	// ErrTimeout is returned when an operation times out.
	ErrTimeout = errors.New("operation timed out")

	// ErrInternal is returned for unexpected internal system errors.
	ErrInternal = errors.New("internal system error")
)
