package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubeget/tubeget/internal/model"
)

const testWatchURL = "https://www.youtube.com/watch?v=abc123"

// installFakeYTDLP puts a shell script named yt-dlp on PATH and points the
// go-ytdlp cache at an empty directory so the script is the binary that gets
// resolved.
func installFakeYTDLP(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake yt-dlp requires a POSIX shell")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, "yt-dlp")
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// jsonLine builds the single info line yt-dlp prints when invoked with a
// JSON flag.
func jsonLine(extra string) string {
	return fmt.Sprintf(`{"_type":"video","id":"abc123","title":"Test Video","duration":120%s}`, extra)
}

func TestFetchReportsSavedPath(t *testing.T) {
	installFakeYTDLP(t, "#!/bin/sh\necho '"+jsonLine(`,"filename":"/tmp/tubeget/Test_Video.mp4"`)+"'\n")

	p := NewYTDLP(nil)
	path, err := p.Fetch(context.Background(), testWatchURL, t.TempDir(), FetchOptions{Preset: model.PresetMP4720})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/tubeget/Test_Video.mp4", path)
}

func TestFetchReadsLegacyFilenameKey(t *testing.T) {
	installFakeYTDLP(t, "#!/bin/sh\necho '"+jsonLine(`,"_filename":"/tmp/tubeget/Test_Video.mp4"`)+"'\n")

	p := NewYTDLP(nil)
	path, err := p.Fetch(context.Background(), testWatchURL, t.TempDir(), FetchOptions{Preset: model.PresetMP4720})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/tubeget/Test_Video.mp4", path)
}

func TestFetchErrorWithoutReportedFile(t *testing.T) {
	installFakeYTDLP(t, "#!/bin/sh\necho 'not json'\n")

	p := NewYTDLP(nil)
	_, err := p.Fetch(context.Background(), testWatchURL, t.TempDir(), FetchOptions{Preset: model.PresetMP4720})

	require.Error(t, err)
	assert.Equal(t, model.ErrUnknown, model.KindOf(err))
}

func TestFetchCleansPartialFilesOnFailure(t *testing.T) {
	installFakeYTDLP(t, "#!/bin/sh\nexit 1\n")

	dest := t.TempDir()
	leftover := filepath.Join(dest, "Test_Video.mp4.part")
	require.NoError(t, os.WriteFile(leftover, []byte("partial"), 0o644))

	p := NewYTDLP(nil)
	_, err := p.Fetch(context.Background(), testWatchURL, dest, FetchOptions{Preset: model.PresetMP4720})

	require.Error(t, err)
	_, statErr := os.Stat(leftover)
	assert.True(t, os.IsNotExist(statErr), "partial file must be removed after a failed fetch")
}

func TestProbeReportsVideoInfo(t *testing.T) {
	installFakeYTDLP(t, "#!/bin/sh\necho '"+jsonLine("")+"'\n")

	p := NewYTDLP(nil)
	info, err := p.Probe(context.Background(), testWatchURL)

	require.NoError(t, err)
	assert.Equal(t, "Test Video", info.Title)
	assert.Equal(t, 2*time.Minute, info.Duration)
}

func TestProbeErrorWithoutInfo(t *testing.T) {
	installFakeYTDLP(t, "#!/bin/sh\necho 'WARNING: nothing extracted'\n")

	p := NewYTDLP(nil)
	info, err := p.Probe(context.Background(), testWatchURL)

	require.Error(t, err)
	assert.Nil(t, info)
	assert.Equal(t, model.ErrUnknown, model.KindOf(err))
}
