package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/tubeget/tubeget/internal/config"
	"github.com/tubeget/tubeget/internal/download"
	"github.com/tubeget/tubeget/internal/model"
	"github.com/tubeget/tubeget/internal/platform"
	"github.com/tubeget/tubeget/internal/provider"
	"github.com/tubeget/tubeget/internal/validate"
)

// RootUI represents the main window: URL entry, video info, format picker,
// destination row, progress and controls.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	coordinator  *download.Coordinator
	provider     provider.VideoProvider
	log          *zap.Logger

	urlEntry      *widget.Entry
	infoBtn       *widget.Button
	titleLabel    *widget.Label
	durationLabel *widget.Label
	sizeLabel     *widget.Label
	formatRadio   *widget.RadioGroup
	pathLabel     *widget.Label
	progressBar   *widget.ProgressBar
	progressLabel *widget.Label
	downloadBtn   *widget.Button
	cancelBtn     *widget.Button
	statusLabel   *widget.Label

	mu           sync.Mutex
	status       model.TaskStatus
	lastInfo     *model.VideoInfo
	lastUIUpdate time.Time
}

// NewRootUI creates and initializes the main UI.
func NewRootUI(window fyne.Window, app fyne.App, coordinator *download.Coordinator, videoProvider provider.VideoProvider, log *zap.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		coordinator:  coordinator,
		provider:     videoProvider,
		log:          log,
		status:       model.TaskStatusIdle,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	coordinator.SetFilenameTemplate(settings.GetFilenameTemplate())
	coordinator.SetProgressCallback(ui.onProgress)

	ui.setupUI()

	go ui.consumeResults()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	loc := ui.localization

	// URL row
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(loc.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) { ui.onInfoClick() }
	ui.infoBtn = widget.NewButton(loc.GetText(KeyGetInfo), ui.onInfoClick)
	urlRow := container.NewBorder(nil, nil, nil, ui.infoBtn, ui.urlEntry)

	// Video info
	ui.titleLabel = widget.NewLabel(loc.GetText(KeyNoVideo))
	ui.titleLabel.Wrapping = fyne.TextWrapWord
	ui.durationLabel = widget.NewLabel(DashPlaceholder)
	ui.sizeLabel = widget.NewLabel(DashPlaceholder)
	infoGrid := container.NewVBox(
		container.NewHBox(widget.NewLabel(loc.GetText(KeyTitle)), ui.titleLabel),
		container.NewHBox(widget.NewLabel(loc.GetText(KeyDuration)), ui.durationLabel),
		container.NewHBox(widget.NewLabel(loc.GetText(KeyEstSize)), ui.sizeLabel),
	)

	// Format presets
	options := make([]string, 0, len(model.FormatPresetOptions()))
	for _, preset := range model.FormatPresetOptions() {
		options = append(options, preset.Label())
	}
	ui.formatRadio = widget.NewRadioGroup(options, func(string) {
		ui.settings.SetFormatPreset(ui.selectedPreset())
		ui.refreshSizeEstimate()
	})
	ui.formatRadio.SetSelected(ui.settings.GetFormatPreset().Label())

	// Destination row
	ui.pathLabel = widget.NewLabel(ui.settings.GetDownloadDirectory())
	ui.pathLabel.Truncation = fyne.TextTruncateEllipsis
	browseBtn := widget.NewButton(loc.GetText(KeyBrowse), ui.onBrowseClick)
	locationRow := container.NewBorder(nil, nil, nil, browseBtn, ui.pathLabel)

	// Progress
	ui.progressBar = widget.NewProgressBar()
	ui.progressLabel = widget.NewLabel(fmt.Sprintf(ProgressLabelFormat, 0))
	progressRow := container.NewBorder(nil, nil, nil, ui.progressLabel, ui.progressBar)

	// Controls
	ui.downloadBtn = widget.NewButton(loc.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton(loc.GetText(KeyCancel), ui.onCancelClick)
	ui.cancelBtn.Disable()
	controls := container.NewHBox(ui.downloadBtn, ui.cancelBtn)

	// Status line
	ui.statusLabel = widget.NewLabel(loc.GetText(KeyStatusReady))

	content := container.NewVBox(
		widget.NewCard(loc.GetText(KeyURLSection), "", urlRow),
		widget.NewCard(loc.GetText(KeyInfoSection), "", infoGrid),
		widget.NewCard(loc.GetText(KeyFormatSection), "", ui.formatRadio),
		widget.NewCard(loc.GetText(KeyLocationSection), "", locationRow),
		widget.NewCard(loc.GetText(KeyProgressSection), "", progressRow),
		container.NewCenter(controls),
		ui.statusLabel,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// onInfoClick fetches video metadata off the UI thread.
func (ui *RootUI) onInfoClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if err := ui.checkURLInput(urlText); err != nil {
		return
	}

	ui.infoBtn.Disable()
	ui.infoBtn.SetText(ui.localization.GetText(KeyLoading))
	ui.setStatus(ui.localization.GetText(KeyStatusFetching))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ProbeTimeout)
		defer cancel()

		info, err := ui.provider.Probe(ctx, urlText)

		fyne.Do(func() {
			ui.infoBtn.Enable()
			ui.infoBtn.SetText(ui.localization.GetText(KeyGetInfo))

			if err != nil {
				ui.setStatus(ui.localization.GetText(KeyStatusFailed))
				dialog.ShowError(errors.New(ui.errorText(model.KindOf(err))), ui.window)
				return
			}

			ui.mu.Lock()
			ui.lastInfo = info
			ui.mu.Unlock()

			ui.titleLabel.SetText(info.Title)
			ui.durationLabel.SetText(formatInfoDuration(info))
			ui.refreshSizeEstimate()
			ui.setStatus(ui.localization.GetText(KeyStatusInfoLoaded))
		})
	}()
}

// onDownloadClick validates the input and submits a download request.
func (ui *RootUI) onDownloadClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if err := ui.checkURLInput(urlText); err != nil {
		return
	}

	req := model.NewRequest(urlText, ui.settings.GetDownloadDirectory(), ui.selectedPreset())

	if err := ui.coordinator.Submit(req); err != nil {
		dialog.ShowError(errors.New(ui.localization.GetText(KeyBusy)), ui.window)
		return
	}

	ui.log.Info("request submitted", zap.String("id", req.ID), zap.String("url", req.URL))

	ui.setActiveState(true)
	ui.progressBar.SetValue(0)
	ui.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, 0))
	ui.setStatus(ui.localization.GetText(KeyStatusStarting))
}

// onCancelClick aborts the in-flight download.
func (ui *RootUI) onCancelClick() {
	ui.coordinator.Cancel()
}

// onBrowseClick opens the system folder picker.
func (ui *RootUI) onBrowseClick() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		dir := uri.Path()
		ui.settings.SetDownloadDirectory(dir)
		ui.pathLabel.SetText(dir)
	}, ui.window)
}

// onProgress handles progress snapshots from the provider goroutine.
func (ui *RootUI) onProgress(p provider.Progress) {
	ui.mu.Lock()
	if time.Since(ui.lastUIUpdate) < UIUpdateDebounce {
		ui.mu.Unlock()
		return
	}
	ui.lastUIUpdate = time.Now()
	ui.mu.Unlock()

	fyne.Do(func() {
		ui.progressBar.SetValue(float64(p.Percent) / 100)
		ui.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, p.Percent))
		ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyStatusProgress), p.Percent))
		if p.Title != "" && ui.titleLabel.Text == ui.localization.GetText(KeyNoVideo) {
			ui.titleLabel.SetText(p.Title)
		}
	})
}

// consumeResults renders download outcomes from the results channel.
func (ui *RootUI) consumeResults() {
	for result := range ui.coordinator.Results() {
		res := result
		fyne.Do(func() {
			ui.setActiveState(false)

			switch {
			case res.OK():
				ui.progressBar.SetValue(1)
				ui.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, 100))
				ui.setStatus(ui.localization.GetText(KeyStatusCompleted))
				ui.showCompletedDialog(res.SavedPath)
			case res.Canceled:
				ui.progressBar.SetValue(0)
				ui.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, 0))
				ui.setStatus(ui.localization.GetText(KeyStatusCancelled))
			default:
				ui.setStatus(ui.localization.GetText(KeyStatusFailed))
				dialog.ShowError(errors.New(ui.errorText(res.Kind())), ui.window)
			}
		})
	}
}

// showCompletedDialog offers to reveal the saved file in the system file
// manager.
func (ui *RootUI) showCompletedDialog(savedPath string) {
	message := fmt.Sprintf("%s %s", ui.localization.GetText(KeySavedTo), savedPath)
	dialog.ShowConfirm(
		ui.localization.GetText(KeySuccess),
		fmt.Sprintf("%s\n\n%s", message, ui.localization.GetText(KeyOpenFolder)),
		func(open bool) {
			if !open {
				return
			}
			if err := platform.RevealInManager(savedPath); err != nil {
				ui.log.Warn("reveal in file manager failed", zap.String("path", savedPath), zap.Error(err))
			}
		},
		ui.window,
	)
}

// checkURLInput surfaces validation errors for the URL field. A nil return
// means the input is safe to hand to the coordinator.
func (ui *RootUI) checkURLInput(urlText string) error {
	err := validate.URL(urlText)
	if err == nil {
		return nil
	}

	switch model.KindOf(err) {
	case model.ErrEmptyInput:
		dialog.ShowInformation(ui.localization.GetText(KeyError), ui.localization.GetText(KeyPleaseEnterURL), ui.window)
	default:
		dialog.ShowError(errors.New(ui.localization.GetText(KeyInvalidURL)), ui.window)
	}
	return err
}

// setActiveState toggles button enablement around an in-flight download.
func (ui *RootUI) setActiveState(active bool) {
	ui.mu.Lock()
	if active {
		ui.status = model.TaskStatusDownloading
	} else {
		ui.status = model.TaskStatusIdle
	}
	ui.mu.Unlock()

	if active {
		ui.downloadBtn.Disable()
		ui.cancelBtn.Enable()
	} else {
		ui.downloadBtn.Enable()
		ui.cancelBtn.Disable()
	}
}

func (ui *RootUI) setStatus(text string) {
	ui.statusLabel.SetText(text)
}

// selectedPreset maps the radio selection back to a FormatPreset.
func (ui *RootUI) selectedPreset() model.FormatPreset {
	for _, preset := range model.FormatPresetOptions() {
		if preset.Label() == ui.formatRadio.Selected {
			return preset
		}
	}
	return model.DefaultPreset
}

// refreshSizeEstimate recomputes the size label for the current preset.
func (ui *RootUI) refreshSizeEstimate() {
	ui.mu.Lock()
	info := ui.lastInfo
	ui.mu.Unlock()
	if info == nil {
		return
	}
	ui.sizeLabel.SetText(formatInfoSize(info, ui.selectedPreset()))
}
