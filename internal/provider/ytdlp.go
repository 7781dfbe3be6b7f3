// Package provider wraps the external video-download capability behind the
// VideoProvider interface. The yt-dlp implementation is built on
// github.com/lrstanley/go-ytdlp; its errors are mapped into the ErrorKind
// taxonomy at this boundary.
package provider

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/tubeget/tubeget/internal/model"
	"github.com/tubeget/tubeget/internal/platform"
)

const (
	// DefaultFilenameTemplate is the yt-dlp output template used when the
	// caller does not supply one.
	DefaultFilenameTemplate = "%(title)s.%(ext)s"

	progressInterval = 500 * time.Millisecond
)

// YTDLP is the yt-dlp backed VideoProvider.
type YTDLP struct {
	log *zap.Logger
}

// NewYTDLP creates a yt-dlp backed provider.
func NewYTDLP(log *zap.Logger) *YTDLP {
	if log == nil {
		log = zap.NewNop()
	}
	return &YTDLP{log: log}
}

// Fetch downloads the video at url into destDir and returns the saved file
// path. On failure it removes any partial files from destDir before
// returning the mapped error.
func (p *YTDLP) Fetch(ctx context.Context, url, destDir string, opts FetchOptions) (string, error) {
	tpl := opts.FilenameTemplate
	if tpl == "" {
		tpl = DefaultFilenameTemplate
	}

	// PrintJSON makes yt-dlp emit the extracted info as JSON, which is the
	// only way GetExtractedInfo returns the saved file path afterwards.
	dl := ytdlp.New().
		ForceOverwrites().
		RestrictFilenames().
		PrintJSON().
		Format(formatFor(opts.Preset)).
		Output(filepath.Join(destDir, tpl))

	if opts.Preset == model.PresetAudioMP3 {
		dl = dl.ExtractAudio().AudioFormat("mp3")
	}

	if opts.OnProgress != nil {
		dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
			opts.OnProgress(progressFrom(&update))
		})
	}

	p.log.Info("starting fetch", zap.String("url", url), zap.String("dir", destDir), zap.String("preset", string(opts.Preset)))

	result, err := dl.Run(ctx, url)
	if err != nil {
		// A failed fetch must leave nothing behind in the destination.
		if cleanupErr := platform.RemovePartialFiles(destDir); cleanupErr != nil {
			p.log.Warn("partial file cleanup failed", zap.String("dir", destDir), zap.Error(cleanupErr))
		}
		return "", Classify(err)
	}

	savedPath := savedPathFrom(result)
	if savedPath == "" {
		return "", model.Errorf(model.ErrUnknown, "download finished but no output file was reported")
	}

	p.log.Info("fetch completed", zap.String("url", url), zap.String("path", savedPath))
	return savedPath, nil
}

// Probe fetches video metadata without downloading. DumpJSON is required
// for the extracted info to be parseable from the run result.
func (p *YTDLP) Probe(ctx context.Context, url string) (*model.VideoInfo, error) {
	result, err := ytdlp.New().SkipDownload().DumpJSON().Run(ctx, url)
	if err != nil {
		return nil, Classify(err)
	}

	extracted, err := result.GetExtractedInfo()
	if err != nil || len(extracted) == 0 {
		return nil, model.Errorf(model.ErrUnknown, "no video information extracted for %s", url)
	}

	info := &model.VideoInfo{}
	if extracted[0].Title != nil {
		info.Title = *extracted[0].Title
	}
	if extracted[0].Duration != nil {
		info.Duration = time.Duration(*extracted[0].Duration * float64(time.Second))
	}
	return info, nil
}

// formatFor returns the yt-dlp format string for a preset, matching the
// presets offered in the UI.
func formatFor(preset model.FormatPreset) string {
	switch preset {
	case model.PresetMP4720:
		return "best[height<=720][ext=mp4]"
	case model.PresetMP4480:
		return "best[height<=480][ext=mp4]"
	case model.PresetMP4Best:
		return "best[ext=mp4]"
	case model.PresetAudioM4A:
		return "bestaudio[ext=m4a]/bestaudio"
	case model.PresetAudioMP3:
		return "bestaudio/best"
	default:
		return "best[ext=mp4]"
	}
}

// progressFrom converts a yt-dlp progress update into a Progress snapshot.
func progressFrom(update *ytdlp.ProgressUpdate) Progress {
	pr := Progress{
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		ETASec:          -1,
	}

	if update.TotalBytes > 0 {
		pr.Percent = int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			pr.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	if eta := update.ETA(); eta > 0 {
		pr.ETASec = int(eta.Seconds())
	}

	if update.Info != nil && update.Info.Title != nil {
		pr.Title = *update.Info.Title
	}

	return pr
}

// savedPathFrom pulls the output file path from a finished run.
func savedPathFrom(result *ytdlp.Result) string {
	if result == nil {
		return ""
	}
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return ""
	}
	if info[0].Filename != nil {
		return *info[0].Filename
	}
	// Older yt-dlp versions report the path under "_filename" only.
	if info[0].AltFilename != nil {
		return *info[0].AltFilename
	}
	return ""
}
