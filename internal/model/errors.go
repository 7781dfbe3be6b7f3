package model

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes download failures. EmptyInput and MalformedURL are
// local validation failures surfaced before any fetch attempt; the remaining
// kinds map provider-boundary errors.
type ErrorKind string

const (
	ErrEmptyInput       ErrorKind = "empty_input"
	ErrMalformedURL     ErrorKind = "malformed_url"
	ErrNetwork          ErrorKind = "network_error"
	ErrVideoUnavailable ErrorKind = "video_unavailable"
	ErrWrite            ErrorKind = "write_error"
	ErrUnknown          ErrorKind = "unknown_error"
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	return string(k)
}

// DownloadError is a categorized download failure. Cause keeps the
// underlying error for logging; callers branch on Kind only, so the core
// never depends on a third-party error shape.
type DownloadError struct {
	Kind  ErrorKind
	Cause error
}

// NewError wraps cause with the given kind.
func NewError(kind ErrorKind, cause error) *DownloadError {
	return &DownloadError{Kind: kind, Cause: cause}
}

// Errorf creates a DownloadError with a formatted cause message.
func Errorf(kind ErrorKind, format string, args ...any) *DownloadError {
	return &DownloadError{Kind: kind, Cause: fmt.Errorf(format, args...)}
}

func (e *DownloadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return string(e.Kind)
}

func (e *DownloadError) Unwrap() error {
	return e.Cause
}

// KindOf extracts the ErrorKind from an error chain. Errors that carry no
// DownloadError are reported as ErrUnknown.
func KindOf(err error) ErrorKind {
	var de *DownloadError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrUnknown
}
