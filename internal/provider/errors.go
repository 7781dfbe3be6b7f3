package provider

import (
	"context"
	"errors"
	"net"
	"os"
	"strings"

	"github.com/tubeget/tubeget/internal/model"
)

// Error message fragments grouped by kind. yt-dlp reports most failures as
// text, so classification has to match on substrings.
var (
	unavailableFragments = []string{
		"video unavailable",
		"private video",
		"has been removed",
		"no longer available",
		"account associated",
		"blocked in your country",
	}
	networkFragments = []string{
		"timeout",
		"timed out",
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"temporary failure",
		"tls handshake",
		"unable to download webpage",
	}
	writeFragments = []string{
		"permission denied",
		"read-only file system",
		"no space left",
		"unable to open for writing",
	}
)

// Classify maps an arbitrary provider error into the fixed ErrorKind set so
// callers never depend on the third-party library's error shape. Errors that
// already carry a kind pass through unchanged.
func Classify(err error) *model.DownloadError {
	if err == nil {
		return nil
	}

	var de *model.DownloadError
	if errors.As(err, &de) {
		return de
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return model.NewError(model.ErrNetwork, err)
	}
	if os.IsPermission(err) {
		return model.NewError(model.ErrWrite, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, unavailableFragments):
		return model.NewError(model.ErrVideoUnavailable, err)
	case containsAny(msg, networkFragments):
		return model.NewError(model.ErrNetwork, err)
	case containsAny(msg, writeFragments):
		return model.NewError(model.ErrWrite, err)
	default:
		return model.NewError(model.ErrUnknown, err)
	}
}

func containsAny(msg string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}
