package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Extensions of temporary files yt-dlp leaves behind on interrupted runs.
var PartialExtensions = []string{".part", ".ytdl"}

// Characters not allowed in filenames on common filesystems.
const invalidFilenameChars = `<>:"/\|?*`

// UniquePath retry limit before falling back to a fixed suffix.
const maxUniquePathAttempts = 9999

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// CheckDirWritable verifies that files can be created in dir by writing and
// removing a probe file. Permission bits alone are not reliable across
// platforms and mount options.
func CheckDirWritable(dir string) error {
	probe, err := os.CreateTemp(dir, ".tubeget-write-check-*")
	if err != nil {
		return fmt.Errorf("destination is not writable: %w", err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return nil
}

// HomeDownloadsDir returns the standard Downloads directory for the user.
func HomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// SanitizeFilename replaces characters that are invalid on common
// filesystems and trims leading/trailing spaces and dots. Empty input maps
// to "untitled".
func SanitizeFilename(name string) string {
	if name == "" {
		return "untitled"
	}

	sanitized := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidFilenameChars, r) {
			return '_'
		}
		return r
	}, name)

	sanitized = strings.Trim(sanitized, " .")
	if sanitized == "" {
		return "untitled"
	}
	return sanitized
}

// UniquePath returns a path under baseDir for filename that does not collide
// with an existing file, appending a numbered suffix when needed.
func UniquePath(baseDir, filename string) string {
	fullPath := filepath.Join(baseDir, SanitizeFilename(filename))
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return fullPath
	}

	ext := filepath.Ext(fullPath)
	stem := strings.TrimSuffix(fullPath, ext)

	for i := 1; i <= maxUniquePathAttempts; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}

	return fmt.Sprintf("%s_final%s", stem, ext)
}

// RemovePartialFiles deletes leftover partial-download files in dir. It is
// called by the provider boundary after a failed fetch so that a failure
// leaves nothing behind in the destination.
func RemovePartialFiles(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var firstErr error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, ext := range PartialExtensions {
			if strings.HasSuffix(entry.Name(), ext) {
				if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil && firstErr == nil {
					firstErr = err
				}
				break
			}
		}
	}
	return firstErr
}

// RevealInManager opens the directory containing path in the system file
// manager, highlighting the file where the platform supports it.
func RevealInManager(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command("open", "-R", absPath).Run()
	case OSWindows:
		return exec.Command("explorer", "/select,", absPath).Run()
	case OSLinux:
		// File selection is not standardized on Linux; open the parent directory.
		return exec.Command("xdg-open", filepath.Dir(absPath)).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
