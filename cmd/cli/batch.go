package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tubeget/tubeget/internal/download"
	"github.com/tubeget/tubeget/internal/model"
	"github.com/tubeget/tubeget/internal/platform"
	"github.com/tubeget/tubeget/internal/provider"
)

// batchEntry is one download in a batch file. Output and format fall back to
// the command-level flags when omitted.
type batchEntry struct {
	URL    string `yaml:"url"`
	Output string `yaml:"output,omitempty"`
	Format string `yaml:"format,omitempty"`
}

type batchFile struct {
	Downloads []batchEntry `yaml:"downloads"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Download videos listed in a YAML file, one at a time",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !runBatch(args[0]) {
			os.Exit(1)
		}
	},
}

// runBatch downloads every entry sequentially. Each request is still handled
// atomically; a failed entry does not stop the rest.
func runBatch(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		printError(fmt.Sprintf("cannot read batch file: %v", err))
		return false
	}

	var batch batchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		printError(fmt.Sprintf("cannot parse batch file: %v", err))
		return false
	}
	if len(batch.Downloads) == 0 {
		printError("batch file lists no downloads")
		return false
	}

	defaultDir, err := resolveOutputDir()
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

	failed := 0
	for i, entry := range batch.Downloads {
		if ctx.Err() != nil {
			printError("interrupted")
			return false
		}

		dir := entry.Output
		if dir == "" {
			dir = defaultDir
		} else if err := platform.EnsureDir(dir); err != nil {
			printError(fmt.Sprintf("[%d/%d] cannot create %s: %v", i+1, len(batch.Downloads), dir, err))
			failed++
			continue
		}

		entryPreset := preset
		if entry.Format != "" {
			entryPreset = entry.Format
		}

		printInfo(fmt.Sprintf("[%d/%d] %s", i+1, len(batch.Downloads), entry.URL))

		req := model.NewRequest(entry.URL, dir, model.PresetFromString(entryPreset))
		result := coordinator.Download(ctx, req)
		finishProgressLine()

		switch {
		case result.OK():
			printSuccess("Saved to " + result.SavedPath)
		case result.Canceled:
			printError("Cancelled")
			failed++
		default:
			printError("Failed: " + result.Err.Error())
			failed++
		}
	}

	if failed > 0 {
		printError(fmt.Sprintf("%d of %d downloads failed", failed, len(batch.Downloads)))
		return false
	}
	printSuccess(fmt.Sprintf("All %d downloads completed", len(batch.Downloads)))
	return true
}
