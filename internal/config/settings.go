package config

import (
	"fyne.io/fyne/v2"

	"github.com/tubeget/tubeget/internal/model"
	"github.com/tubeget/tubeget/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir      = "download_directory"
	KeyFormatPreset     = "format_preset"
	KeyFilenameTemplate = "filename_template"
	KeyLanguage         = "app_language"
)

// Default values
const (
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
	DefaultLanguage         = "system"
	fallbackDownloadDir     = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory, defaulting
// to the user's Downloads folder.
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.HomeDownloadsDir()
		if err != nil {
			defaultDir = fallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetFormatPreset returns the configured format preset
func (s *Settings) GetFormatPreset() model.FormatPreset {
	preset := s.app.Preferences().String(KeyFormatPreset)
	if preset == "" {
		s.SetFormatPreset(model.DefaultPreset)
		return model.DefaultPreset
	}
	return model.PresetFromString(preset)
}

// SetFormatPreset sets the format preset
func (s *Settings) SetFormatPreset(preset model.FormatPreset) {
	s.app.Preferences().SetString(KeyFormatPreset, string(preset))
}

// GetFilenameTemplate returns the filename template
func (s *Settings) GetFilenameTemplate() string {
	template := s.app.Preferences().String(KeyFilenameTemplate)
	if template == "" {
		s.SetFilenameTemplate(DefaultFilenameTemplate)
		return DefaultFilenameTemplate
	}
	return template
}

// SetFilenameTemplate sets the filename template
func (s *Settings) SetFilenameTemplate(template string) {
	if template == "" {
		template = DefaultFilenameTemplate
	}
	s.app.Preferences().SetString(KeyFilenameTemplate, template)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
