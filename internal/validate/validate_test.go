package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tubeget/tubeget/internal/model"
)

func TestURL_Empty(t *testing.T) {
	inputs := []string{"", " ", "   ", "\t", "\n", " \t \n "}

	for _, input := range inputs {
		err := URL(input)
		if err == nil {
			t.Errorf("URL(%q) expected error, got nil", input)
			continue
		}
		if kind := model.KindOf(err); kind != model.ErrEmptyInput {
			t.Errorf("URL(%q) expected kind %s, got %s", input, model.ErrEmptyInput, kind)
		}
	}
}

func TestURL_Malformed(t *testing.T) {
	inputs := []string{
		"not a url",
		"http://example.com",
		"https://example.com/watch?v=abc123",
		"https://vimeo.com/12345",
		"youtube.com/watch?v=abc123",
		"ftp://youtube.com/watch?v=abc123",
		"https://youtube.com/playlist?list=PL123",
	}

	for _, input := range inputs {
		err := URL(input)
		if err == nil {
			t.Errorf("URL(%q) expected error, got nil", input)
			continue
		}
		if kind := model.KindOf(err); kind != model.ErrMalformedURL {
			t.Errorf("URL(%q) expected kind %s, got %s", input, model.ErrMalformedURL, kind)
		}
	}
}

func TestURL_Valid(t *testing.T) {
	inputs := []string{
		"https://www.youtube.com/watch?v=abc123",
		"http://youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=a_b-c",
		"https://www.youtube.com/embed/abc123",
		"https://youtube.com/v/abc123",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://m.youtube.com/watch?v=abc123",
		"  https://www.youtube.com/watch?v=abc123  ",
	}

	for _, input := range inputs {
		if err := URL(input); err != nil {
			t.Errorf("URL(%q) expected success, got %v", input, err)
		}
	}
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
		found    bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/abc123", "abc123", true},
		{"https://www.youtube.com/embed/xyz789", "xyz789", true},
		{"https://youtube.com/v/id42", "id42", true},
		{"https://www.youtube.com/watch?v=abc123&t=10s", "abc123", true},
		{"https://example.com/video", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		id, found := VideoID(test.url)
		if found != test.found {
			t.Errorf("VideoID(%q) found = %v, expected %v", test.url, found, test.found)
			continue
		}
		if id != test.expected {
			t.Errorf("VideoID(%q) = %q, expected %q", test.url, id, test.expected)
		}
	}
}

func TestDestination_Valid(t *testing.T) {
	dir := t.TempDir()

	if err := Destination(dir); err != nil {
		t.Errorf("Destination(%q) expected success, got %v", dir, err)
	}
}

func TestDestination_Missing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	err := Destination(dir)
	if err == nil {
		t.Fatal("Expected error for missing directory, got nil")
	}
	if kind := model.KindOf(err); kind != model.ErrWrite {
		t.Errorf("Expected kind %s, got %s", model.ErrWrite, kind)
	}
}

func TestDestination_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain-file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	err := Destination(file)
	if err == nil {
		t.Fatal("Expected error for non-directory, got nil")
	}
	if kind := model.KindOf(err); kind != model.ErrWrite {
		t.Errorf("Expected kind %s, got %s", model.ErrWrite, kind)
	}
}

func TestDestination_Empty(t *testing.T) {
	err := Destination("")
	if err == nil {
		t.Fatal("Expected error for empty destination, got nil")
	}
	if kind := model.KindOf(err); kind != model.ErrWrite {
		t.Errorf("Expected kind %s, got %s", model.ErrWrite, kind)
	}
}

func TestRequest(t *testing.T) {
	dir := t.TempDir()

	req := model.NewRequest("https://www.youtube.com/watch?v=abc123", dir, model.PresetMP4720)
	if err := Request(req); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}

	bad := model.NewRequest("not a url", dir, model.PresetMP4720)
	err := Request(bad)
	if err == nil {
		t.Fatal("Expected error for malformed URL, got nil")
	}
	if kind := model.KindOf(err); kind != model.ErrMalformedURL {
		t.Errorf("Expected kind %s, got %s", model.ErrMalformedURL, kind)
	}
}
