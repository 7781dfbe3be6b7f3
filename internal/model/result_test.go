package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestSuccess(t *testing.T) {
	result := Success("req-1", "/tmp/out/video.mp4")

	if !result.OK() {
		t.Error("Expected successful result to be OK")
	}
	if result.SavedPath != "/tmp/out/video.mp4" {
		t.Errorf("Expected saved path '/tmp/out/video.mp4', got '%s'", result.SavedPath)
	}
	if result.Kind() != "" {
		t.Errorf("Expected empty kind for success, got %s", result.Kind())
	}
	if result.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be set")
	}
}

func TestFailure(t *testing.T) {
	result := Failure("req-1", Errorf(ErrNetwork, "connection refused"))

	if result.OK() {
		t.Error("Expected failed result to not be OK")
	}
	if result.Kind() != ErrNetwork {
		t.Errorf("Expected kind %s, got %s", ErrNetwork, result.Kind())
	}
	if result.SavedPath != "" {
		t.Errorf("Expected empty saved path, got '%s'", result.SavedPath)
	}
}

func TestCancelled(t *testing.T) {
	result := Cancelled("req-1")

	if result.OK() {
		t.Error("Expected cancelled result to not be OK")
	}
	if !result.Canceled {
		t.Error("Expected Canceled flag to be set")
	}
	if result.Err != nil {
		t.Errorf("Expected no error for cancelled result, got %v", result.Err)
	}
}

func TestDownloadError_Error(t *testing.T) {
	tests := []struct {
		err      *DownloadError
		expected string
	}{
		{NewError(ErrWrite, errors.New("disk full")), "write_error: disk full"},
		{&DownloadError{Kind: ErrUnknown}, "unknown_error"},
	}

	for _, test := range tests {
		if got := test.err.Error(); got != test.expected {
			t.Errorf("Error() = %q, expected %q", got, test.expected)
		}
	}
}

func TestDownloadError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewError(ErrUnknown, cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err      error
		expected ErrorKind
	}{
		{Errorf(ErrEmptyInput, "empty"), ErrEmptyInput},
		{Errorf(ErrMalformedURL, "bad"), ErrMalformedURL},
		{fmt.Errorf("wrapped: %w", Errorf(ErrVideoUnavailable, "gone")), ErrVideoUnavailable},
		{errors.New("plain"), ErrUnknown},
		{nil, ErrUnknown},
	}

	for _, test := range tests {
		if got := KindOf(test.err); got != test.expected {
			t.Errorf("KindOf(%v) = %s, expected %s", test.err, got, test.expected)
		}
	}
}
