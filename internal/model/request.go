package model

import (
	"time"

	"github.com/google/uuid"
)

// FormatPreset selects the media format for a download.
type FormatPreset string

const (
	PresetMP4720   FormatPreset = "mp4_720"
	PresetMP4480   FormatPreset = "mp4_480"
	PresetMP4Best  FormatPreset = "mp4_best"
	PresetAudioM4A FormatPreset = "audio_m4a"
	PresetAudioMP3 FormatPreset = "audio_mp3"
)

// DefaultPreset is used when the user has not picked a format yet.
const DefaultPreset = PresetMP4720

// FormatPresetOptions returns all selectable presets in display order.
func FormatPresetOptions() []FormatPreset {
	return []FormatPreset{PresetMP4720, PresetMP4480, PresetMP4Best, PresetAudioMP3, PresetAudioM4A}
}

// IsAudio reports whether the preset produces an audio-only file.
func (p FormatPreset) IsAudio() bool {
	return p == PresetAudioM4A || p == PresetAudioMP3
}

// Label returns the human-readable name shown in format selectors.
func (p FormatPreset) Label() string {
	switch p {
	case PresetMP4720:
		return "MP4 Video (720p)"
	case PresetMP4480:
		return "MP4 Video (480p)"
	case PresetMP4Best:
		return "MP4 Video (Best Quality)"
	case PresetAudioMP3:
		return "Audio Only (MP3)"
	case PresetAudioM4A:
		return "Audio Only (M4A)"
	default:
		return string(p)
	}
}

// PresetFromString converts a stored/flag value into a FormatPreset,
// falling back to DefaultPreset for unrecognized input.
func PresetFromString(s string) FormatPreset {
	for _, p := range FormatPresetOptions() {
		if string(p) == s {
			return p
		}
	}
	return DefaultPreset
}

// DownloadRequest pairs a video URL with a destination directory. A request
// is constructed fresh per user action, consumed once by the coordinator,
// and discarded after producing a DownloadResult.
type DownloadRequest struct {
	ID          string
	URL         string
	Destination string
	Preset      FormatPreset
	CreatedAt   time.Time
}

// NewRequest creates a DownloadRequest with a unique ID.
func NewRequest(url, destination string, preset FormatPreset) DownloadRequest {
	return DownloadRequest{
		ID:          "req-" + uuid.NewString(),
		URL:         url,
		Destination: destination,
		Preset:      preset,
		CreatedAt:   time.Now(),
	}
}
