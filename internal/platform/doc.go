package platform

// Package platform contains OS/filesystem integration: directory and
// filename helpers, human-readable formatting, and opening the download
// folder in the system file manager.
