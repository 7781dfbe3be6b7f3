package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/tubeget/tubeget/internal/config"
	"github.com/tubeget/tubeget/internal/download"
	"github.com/tubeget/tubeget/internal/platform"
	"github.com/tubeget/tubeget/internal/provider"
	"github.com/tubeget/tubeget/internal/ui"
	"github.com/tubeget/tubeget/pkg/logger"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.tubeget.tubeget"

func main() {
	log := logger.NewDefault()
	defer log.Sync()

	log.Info("TubeGet starting", zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("TubeGet")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.EnsureDir(downloadsDir); err != nil {
		log.Warn("failed to ensure downloads dir", zap.String("dir", downloadsDir), zap.Error(err))
	}

	videoProvider := provider.NewYTDLP(log)
	coordinator := download.New(videoProvider, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	coordinator.Start(ctx)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, coordinator, videoProvider, log)

	// Show and run
	myWindow.ShowAndRun()
}
