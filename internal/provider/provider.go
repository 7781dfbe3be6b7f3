package provider

import (
	"context"

	"github.com/tubeget/tubeget/internal/model"
)

// Progress is a point-in-time snapshot of an in-flight fetch.
type Progress struct {
	Percent         int
	DownloadedBytes int64
	TotalBytes      int64
	Speed           string // human readable, e.g. "1.2MB/s"
	ETASec          int    // -1 when unknown
	Title           string // video title once known
}

// FetchOptions configures a single fetch.
type FetchOptions struct {
	Preset           model.FormatPreset
	FilenameTemplate string
	OnProgress       func(Progress)
}

// VideoProvider is the boundary to the external video-download capability.
// Fetch writes exactly one file into destDir and returns its path; on
// failure it returns a categorized error and leaves nothing behind in
// destDir. Probe fetches metadata without downloading.
type VideoProvider interface {
	Fetch(ctx context.Context, url, destDir string, opts FetchOptions) (string, error)
	Probe(ctx context.Context, url string) (*model.VideoInfo, error)
}

// Bytes-per-second figures used to estimate file sizes from duration when
// the provider reports no size, matching the rough rates of each preset.
const (
	estBytesPerSec720  = 1_000_000
	estBytesPerSec480  = 500_000
	estBytesPerSecBest = 2_000_000
	estBytesPerSecAud  = 128_000 / 8 // 128kbps audio
)

// EstimateSize returns a duration-based size estimate for the given preset.
func EstimateSize(info *model.VideoInfo, preset model.FormatPreset) int64 {
	if info == nil || info.Duration <= 0 {
		return 0
	}
	seconds := int64(info.Duration.Seconds())

	switch {
	case preset.IsAudio():
		return seconds * estBytesPerSecAud
	case preset == model.PresetMP4720:
		return seconds * estBytesPerSec720
	case preset == model.PresetMP4480:
		return seconds * estBytesPerSec480
	default:
		return seconds * estBytesPerSecBest
	}
}
