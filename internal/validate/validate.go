// Package validate implements input validation for download requests: URL
// shape checks against the recognized YouTube link patterns and destination
// directory checks. No network calls are made here.
package validate

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/tubeget/tubeget/internal/model"
	"github.com/tubeget/tubeget/internal/platform"
)

// Recognized YouTube URL shapes. Shortened youtu.be links are accepted
// alongside watch, embed, /v/ and the mobile host.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://(www\.)?youtube\.com/watch\?v=[\w-]+`),
	regexp.MustCompile(`^https?://(www\.)?youtube\.com/embed/[\w-]+`),
	regexp.MustCompile(`^https?://youtu\.be/[\w-]+`),
	regexp.MustCompile(`^https?://(www\.)?youtube\.com/v/[\w-]+`),
	regexp.MustCompile(`^https?://m\.youtube\.com/watch\?v=[\w-]+`),
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#]+)`),
}

// URL checks that raw is a plausible YouTube video link. It returns a
// DownloadError with kind ErrEmptyInput for empty or whitespace-only input
// and ErrMalformedURL for anything that does not match a recognized pattern.
func URL(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.Errorf(model.ErrEmptyInput, "URL is empty")
	}

	for _, pattern := range urlPatterns {
		if pattern.MatchString(trimmed) {
			return nil
		}
	}

	return model.Errorf(model.ErrMalformedURL, "not a recognized YouTube URL: %s", trimmed)
}

// VideoID extracts the video ID from a YouTube URL. The second return value
// is false when no ID can be found.
func VideoID(raw string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Destination checks that dir exists, is a directory and is writable. Any
// failure is reported as a WriteError so it surfaces before a fetch attempt.
func Destination(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return model.Errorf(model.ErrWrite, "destination directory is empty")
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Errorf(model.ErrWrite, "destination does not exist: %s", dir)
		}
		return model.NewError(model.ErrWrite, fmt.Errorf("stat destination: %w", err))
	}
	if !info.IsDir() {
		return model.Errorf(model.ErrWrite, "destination is not a directory: %s", dir)
	}

	if err := platform.CheckDirWritable(dir); err != nil {
		return model.NewError(model.ErrWrite, err)
	}

	return nil
}

// Request validates a whole download request: URL first, destination second.
func Request(req model.DownloadRequest) error {
	if err := URL(req.URL); err != nil {
		return err
	}
	return Destination(req.Destination)
}
