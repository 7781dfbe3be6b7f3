package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/tubeget/tubeget/internal/model"
)

func TestDownloadDirectoryRoundTrip(t *testing.T) {
	settings := NewSettings(test.NewApp())

	settings.SetDownloadDirectory("/data/videos")
	if got := settings.GetDownloadDirectory(); got != "/data/videos" {
		t.Errorf("GetDownloadDirectory() = %q, want %q", got, "/data/videos")
	}
}

func TestDownloadDirectoryDefault(t *testing.T) {
	settings := NewSettings(test.NewApp())

	got := settings.GetDownloadDirectory()
	if got == "" {
		t.Error("GetDownloadDirectory() returned empty string, want a default path")
	}

	// First read persists the default
	if again := settings.GetDownloadDirectory(); again != got {
		t.Errorf("second read = %q, want %q", again, got)
	}
}

func TestFormatPresetRoundTrip(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetFormatPreset(); got != model.DefaultPreset {
		t.Errorf("default preset = %q, want %q", got, model.DefaultPreset)
	}

	settings.SetFormatPreset(model.PresetAudioMP3)
	if got := settings.GetFormatPreset(); got != model.PresetAudioMP3 {
		t.Errorf("GetFormatPreset() = %q, want %q", got, model.PresetAudioMP3)
	}
}

func TestFilenameTemplate(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetFilenameTemplate(); got != DefaultFilenameTemplate {
		t.Errorf("default template = %q, want %q", got, DefaultFilenameTemplate)
	}

	settings.SetFilenameTemplate("%(id)s.%(ext)s")
	if got := settings.GetFilenameTemplate(); got != "%(id)s.%(ext)s" {
		t.Errorf("GetFilenameTemplate() = %q, want %q", got, "%(id)s.%(ext)s")
	}

	// An empty template falls back to the default
	settings.SetFilenameTemplate("")
	if got := settings.GetFilenameTemplate(); got != DefaultFilenameTemplate {
		t.Errorf("after empty set, template = %q, want %q", got, DefaultFilenameTemplate)
	}
}

func TestLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("default language = %q, want %q", got, DefaultLanguage)
	}

	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("GetLanguage() = %q, want %q", got, "ru")
	}
}
