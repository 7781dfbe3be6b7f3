package model

import (
	"strings"
	"testing"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("https://www.youtube.com/watch?v=abc123", "/tmp/out", PresetMP4720)

	if req.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("Expected URL to be preserved, got '%s'", req.URL)
	}
	if req.Destination != "/tmp/out" {
		t.Errorf("Expected destination to be preserved, got '%s'", req.Destination)
	}
	if req.Preset != PresetMP4720 {
		t.Errorf("Expected preset %s, got %s", PresetMP4720, req.Preset)
	}
	if !strings.HasPrefix(req.ID, "req-") {
		t.Errorf("Expected ID to start with 'req-', got: %s", req.ID)
	}
	if req.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestNewRequest_UniqueIDs(t *testing.T) {
	req1 := NewRequest("https://youtu.be/a", "/tmp", PresetMP4Best)
	req2 := NewRequest("https://youtu.be/a", "/tmp", PresetMP4Best)

	if req1.ID == req2.ID {
		t.Error("Expected different request IDs")
	}
}

func TestFormatPreset_IsAudio(t *testing.T) {
	tests := []struct {
		preset   FormatPreset
		expected bool
	}{
		{PresetMP4720, false},
		{PresetMP4480, false},
		{PresetMP4Best, false},
		{PresetAudioMP3, true},
		{PresetAudioM4A, true},
	}

	for _, test := range tests {
		if got := test.preset.IsAudio(); got != test.expected {
			t.Errorf("IsAudio() for %s = %v, expected %v", test.preset, got, test.expected)
		}
	}
}

func TestPresetFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected FormatPreset
	}{
		{"mp4_720", PresetMP4720},
		{"mp4_480", PresetMP4480},
		{"mp4_best", PresetMP4Best},
		{"audio_mp3", PresetAudioMP3},
		{"audio_m4a", PresetAudioM4A},
		{"", DefaultPreset},
		{"bogus", DefaultPreset},
	}

	for _, test := range tests {
		if got := PresetFromString(test.input); got != test.expected {
			t.Errorf("PresetFromString(%q) = %s, expected %s", test.input, got, test.expected)
		}
	}
}

func TestFormatPreset_Label(t *testing.T) {
	for _, preset := range FormatPresetOptions() {
		if preset.Label() == "" {
			t.Errorf("Expected non-empty label for preset %s", preset)
		}
	}
}
