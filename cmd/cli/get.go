package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tubeget/tubeget/internal/download"
	"github.com/tubeget/tubeget/internal/model"
	"github.com/tubeget/tubeget/internal/provider"
)

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Download a single video",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !runGet(args[0]) {
			os.Exit(1)
		}
	},
}

// runGet performs one download and reports the outcome. Returns false on
// failure so the command can exit non-zero.
func runGet(url string) bool {
	dir, err := resolveOutputDir()
	if err != nil {
		printError(err.Error())
		return false
	}

	log := buildLogger()
	defer log.Sync()

	coordinator := download.New(provider.NewYTDLP(log), log)
	if !quiet {
		coordinator.SetProgressCallback(printProgress)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	req := model.NewRequest(url, dir, model.PresetFromString(preset))
	printInfo(fmt.Sprintf("Downloading %s", url))

	result := coordinator.Download(ctx, req)
	finishProgressLine()

	switch {
	case result.OK():
		printSuccess("Saved to " + result.SavedPath)
		return true
	case result.Canceled:
		printError("Download cancelled")
		return false
	default:
		printError("Download failed: " + result.Err.Error())
		return false
	}
}
