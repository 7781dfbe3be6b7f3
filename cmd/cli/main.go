// Headless command-line front end over the same download coordinator the GUI
// uses. No GUI toolkit is linked in; progress renders as styled terminal
// output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tubeget/tubeget/internal/model"
	"github.com/tubeget/tubeget/internal/platform"
	"github.com/tubeget/tubeget/pkg/logger"

	"go.uber.org/zap"
)

var (
	outputDir string
	preset    string
	quiet     bool
)

var TubegetVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "tubeget",
	Short:   "TubeGet downloads YouTube videos from the command line",
	Version: TubegetVersion,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "destination directory (default: ~/Downloads)")
	rootCmd.PersistentFlags().StringVarP(&preset, "format", "f", string(model.DefaultPreset),
		"format preset: mp4_720, mp4_480, mp4_best, audio_mp3, audio_m4a")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildLogger keeps zap quiet on the terminal so styled output stays readable.
func buildLogger() *zap.Logger {
	log, err := logger.New(logger.Config{Level: "warn", Format: "console", OutputPath: "stderr"})
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// resolveOutputDir picks the destination directory and makes sure it exists.
func resolveOutputDir() (string, error) {
	dir := outputDir
	if dir == "" {
		home, err := platform.HomeDownloadsDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine downloads directory: %w", err)
		}
		dir = home
	}
	if err := platform.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("cannot create destination directory: %w", err)
	}
	return dir, nil
}
