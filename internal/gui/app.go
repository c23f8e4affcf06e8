//go:build !nogui
// +build !nogui

package gui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"yearsort/internal/config"
	"yearsort/internal/log"
	"yearsort/internal/organize"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI shell around the organizing engine.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config

	sourceEntry *widget.Entry
	targetEntry *widget.Entry
	yearEntry   *widget.Entry
	typesEntry  *widget.Entry
	dryRunCheck *widget.Check
	modeSelect  *widget.Select
	folderGroup *widget.CheckGroup

	logView     *widget.Entry
	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	runButton   *widget.Button
	stopButton  *widget.Button

	cancelRun context.CancelFunc
}

// NewApp creates the GUI application over an existing configuration.
func NewApp(cfg *config.Config) *App {
	fyneApp := app.NewWithID("io.github.yearsort")

	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
	}
	a.mainWindow = fyneApp.NewWindow("Yearsort")
	a.mainWindow.Resize(fyne.NewSize(720, 640))
	a.mainWindow.SetContent(a.buildUI())
	return a
}

// Run shows the main window and blocks until it is closed.
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}

func (a *App) buildUI() fyne.CanvasObject {
	a.sourceEntry = widget.NewEntry()
	a.sourceEntry.SetText(a.cfg.SourceDir)
	a.sourceEntry.OnChanged = func(path string) {
		a.cfg.SourceDir = path
	}
	sourceBrowse := widget.NewButton("Browse...", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			a.sourceEntry.SetText(uri.Path())
			a.refreshFolders()
		}, a.mainWindow)
	})

	a.targetEntry = widget.NewEntry()
	a.targetEntry.SetText(a.cfg.TargetDir)
	a.targetEntry.SetPlaceHolder("defaults to source directory")
	targetBrowse := widget.NewButton("Browse...", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			a.targetEntry.SetText(uri.Path())
		}, a.mainWindow)
	})

	a.yearEntry = widget.NewEntry()
	a.yearEntry.SetPlaceHolder("e.g. 2023 (all years when empty)")
	a.yearEntry.SetText(a.cfg.TargetYear)

	a.typesEntry = widget.NewEntry()
	a.typesEntry.SetPlaceHolder("e.g. pdf,jpg (all types when empty)")
	a.typesEntry.SetText(joinTypes(a.cfg.FileTypes))

	// Every session starts as a dry run. Loading saved settings never
	// changes this; the user has to untick it each time.
	a.dryRunCheck = widget.NewCheck("Dry run (preview only)", func(on bool) {
		a.cfg.DryRun = on
	})
	a.dryRunCheck.SetChecked(true)

	a.modeSelect = widget.NewSelect([]string{
		string(config.DuplicateRename),
		string(config.DuplicateSkip),
		string(config.DuplicateOverwrite),
		string(config.DuplicateMerge),
	}, func(mode string) {
		a.cfg.DuplicateMode = config.DuplicateMode(mode)
	})
	a.modeSelect.SetSelected(string(a.cfg.DuplicateMode))

	a.folderGroup = widget.NewCheckGroup(nil, nil)
	a.refreshFolders()
	refreshButton := widget.NewButton("Refresh Folders", a.refreshFolders)

	a.logView = widget.NewMultiLineEntry()
	a.logView.Wrapping = fyne.TextWrapWord

	a.progressBar = widget.NewProgressBar()
	a.statusLabel = widget.NewLabel("Ready")

	a.runButton = widget.NewButton("Organize Now", a.startRun)
	a.stopButton = widget.NewButton("Stop", func() {
		if a.cancelRun != nil {
			a.cancelRun()
		}
	})
	a.stopButton.Disable()

	saveButton := widget.NewButton("Save Settings", a.saveSettings)
	loadButton := widget.NewButton("Load Settings", a.loadSettings)

	form := widget.NewForm(
		widget.NewFormItem("Source", container.NewBorder(nil, nil, nil, sourceBrowse, a.sourceEntry)),
		widget.NewFormItem("Target", container.NewBorder(nil, nil, nil, targetBrowse, a.targetEntry)),
		widget.NewFormItem("Year filter", a.yearEntry),
		widget.NewFormItem("File types", a.typesEntry),
		widget.NewFormItem("Duplicates", a.modeSelect),
	)

	folderCard := widget.NewCard("Folders to Organize",
		"Unchecked folders stay in place. With nothing checked only files are organized.",
		container.NewBorder(nil, refreshButton, nil, nil, container.NewVScroll(a.folderGroup)),
	)

	return container.NewVBox(
		form,
		a.dryRunCheck,
		folderCard,
		container.NewHBox(a.runButton, a.stopButton, saveButton, loadButton),
		a.progressBar,
		a.statusLabel,
		widget.NewCard("Log", "", container.NewVScroll(a.logView)),
	)
}

// refreshFolders rescans the source directory's top-level folders into the
// checklist, keeping previously checked names checked.
func (a *App) refreshFolders() {
	checked := make(map[string]struct{}, len(a.folderGroup.Selected))
	for _, name := range a.folderGroup.Selected {
		checked[name] = struct{}{}
	}

	var options, selected []string
	entries, err := os.ReadDir(a.sourceEntry.Text)
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			options = append(options, entry.Name())
			if _, ok := checked[entry.Name()]; ok {
				selected = append(selected, entry.Name())
			}
		}
	}
	sort.Strings(options)

	a.folderGroup.Options = options
	a.folderGroup.SetSelected(selected)
	a.folderGroup.Refresh()
}

// collectConfig materializes the widget state into a run configuration.
func (a *App) collectConfig() *config.Config {
	cfg := config.New()
	cfg.SourceDir = a.sourceEntry.Text
	cfg.TargetDir = a.targetEntry.Text
	cfg.DryRun = a.dryRunCheck.Checked
	cfg.TargetYear = a.yearEntry.Text
	cfg.FileTypes = splitTypes(a.typesEntry.Text)
	cfg.DuplicateMode = config.DuplicateMode(a.modeSelect.Selected)
	cfg.Watch = a.cfg.Watch

	// The checklist is the selection surface. Checked folders become the
	// include list; an empty selection means organize files only.
	if len(a.folderGroup.Selected) > 0 {
		cfg.IncludedFolders = append([]string(nil), a.folderGroup.Selected...)
	} else {
		cfg.FilesOnly = true
	}
	return cfg
}

func (a *App) startRun() {
	cfg := a.collectConfig()
	engine := organize.New(cfg)
	if err := cfg.Validate(); err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancelRun = cancel
	a.runButton.Disable()
	a.stopButton.Enable()
	a.progressBar.SetValue(0)
	a.logView.SetText("")
	a.statusLabel.SetText("Organizing...")

	log.SetCallback(func(level log.Level, message string) {
		a.logView.Append(fmt.Sprintf("[%s] %s\n", level, message))
	})
	engine.SetProgress(func(current, total int) {
		a.progressBar.SetValue(float64(current) / float64(total))
		a.statusLabel.SetText(fmt.Sprintf("Processing %d of %d", current, total))
	})

	go func() {
		stats, err := engine.Organize(ctx)

		a.runButton.Enable()
		a.stopButton.Disable()
		a.cancelRun = nil
		log.SetCallback(nil)

		if err != nil {
			a.statusLabel.SetText("Failed")
			dialog.ShowError(err, a.mainWindow)
			return
		}
		a.statusLabel.SetText("Done")
		dialog.ShowInformation("Run Complete", stats.String(), a.mainWindow)
	}()
}

// saveSettings writes everything except the dry-run flag next to the
// source directory.
func (a *App) saveSettings() {
	cfg := a.collectConfig()
	if cfg.SourceDir == "" {
		dialog.ShowInformation("No Source", "Select a source directory first.", a.mainWindow)
		return
	}
	path := filepath.Join(cfg.SourceDir, config.SettingsFileName)
	if err := config.Save(cfg, path); err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}
	a.statusLabel.SetText("Settings saved")
}

func (a *App) loadSettings() {
	source := a.sourceEntry.Text
	if source == "" {
		dialog.ShowInformation("No Source", "Select a source directory first.", a.mainWindow)
		return
	}
	cfg, err := config.LoadFile(filepath.Join(source, config.SettingsFileName))
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	a.cfg = cfg
	a.targetEntry.SetText(cfg.TargetDir)
	a.yearEntry.SetText(cfg.TargetYear)
	a.typesEntry.SetText(joinTypes(cfg.FileTypes))
	a.modeSelect.SetSelected(string(cfg.DuplicateMode))
	a.refreshFolders()
	a.folderGroup.SetSelected(cfg.IncludedFolders)
	a.dryRunCheck.SetChecked(true)
	a.statusLabel.SetText("Settings loaded")
}
