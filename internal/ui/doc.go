package ui

// Package ui contains the Fyne-based desktop user interface. It wires user
// interactions to the download coordinator, renders progress and typed
// results, and owns the folder picker and settings dialog. All UI strings
// are localized via Localization.
