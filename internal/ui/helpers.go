package ui

import (
	"github.com/tubeget/tubeget/internal/model"
	"github.com/tubeget/tubeget/internal/platform"
	"github.com/tubeget/tubeget/internal/provider"
)

// errorText maps a download error kind to its localized message.
func (ui *RootUI) errorText(kind model.ErrorKind) string {
	key := KeyErrUnknown
	switch kind {
	case model.ErrEmptyInput:
		key = KeyErrEmptyInput
	case model.ErrMalformedURL:
		key = KeyErrMalformedURL
	case model.ErrNetwork:
		key = KeyErrNetwork
	case model.ErrVideoUnavailable:
		key = KeyErrUnavailable
	case model.ErrWrite:
		key = KeyErrWrite
	}
	return ui.localization.GetText(key)
}

func formatInfoDuration(info *model.VideoInfo) string {
	if info == nil {
		return DashPlaceholder
	}
	return platform.FormatDuration(info.Duration)
}

func formatInfoSize(info *model.VideoInfo, preset model.FormatPreset) string {
	size := info.SizeEstimate
	if size == 0 {
		size = provider.EstimateSize(info, preset)
	}
	return platform.FormatFileSize(size)
}
