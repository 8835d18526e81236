package llm

import "errors"

// ErrBlankInput rejects empty chapter text before any model round-trip.
var ErrBlankInput = errors.New("chapter text must not be blank")

// ErrorKind classifies a ClientError for logging and retry decisions. Callers
// outside this package only see one coarse failure type; the kind exists so
// logs and tests can tell transport, remote, and decode failures apart.
type ErrorKind string

const (
	KindTimeout      ErrorKind = "timeout"
	KindConnection   ErrorKind = "connection"
	KindRateLimited  ErrorKind = "rate_limited"
	KindServerError  ErrorKind = "server_error"
	KindRemoteError  ErrorKind = "remote_error"
	KindDecodeFailed ErrorKind = "decode_failed"
	KindInterrupted  ErrorKind = "interrupted"
)

// retryable reports whether another attempt may succeed.
func (k ErrorKind) retryable() bool {
	switch k {
	case KindTimeout, KindConnection, KindRateLimited, KindServerError:
		return true
	}
	return false
}

// ClientError is the single failure type surfaced by the structured model
// client: transport failure, non-retryable status, or decode failure after
// retries are exhausted.
type ClientError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// InvalidResponseError reports a well-formed model payload that is missing the
// shape a generator requires.
type InvalidResponseError struct {
	Message string
}

func (e *InvalidResponseError) Error() string {
	return e.Message
}
