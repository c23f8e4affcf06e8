//go:build !nogui
// +build !nogui

package gui

import (
	"os"
	"path/filepath"
	"testing"

	"yearsort/internal/config"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDirs(base string, names ...string) error {
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(base, name), 0755); err != nil {
			return err
		}
	}
	return nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	test.NewApp()

	cfg := config.New()
	cfg.SourceDir = t.TempDir()
	a := &App{cfg: cfg}
	a.mainWindow = test.NewTempWindow(t, a.buildUI())
	return a
}

func TestDryRunStartsChecked(t *testing.T) {
	a := newTestApp(t)
	assert.True(t, a.dryRunCheck.Checked, "every session must start as a dry run")
}

func TestCollectConfigEmptySelectionMeansFilesOnly(t *testing.T) {
	a := newTestApp(t)

	cfg := a.collectConfig()
	assert.True(t, cfg.FilesOnly)
	assert.Empty(t, cfg.IncludedFolders)
}

func TestCollectConfigMapsWidgets(t *testing.T) {
	a := newTestApp(t)

	a.targetEntry.SetText("/archive")
	a.yearEntry.SetText("2023")
	a.typesEntry.SetText("pdf, jpg")
	a.modeSelect.SetSelected(string(config.DuplicateSkip))
	a.dryRunCheck.SetChecked(false)
	a.folderGroup.Options = []string{"Photos", "Work"}
	a.folderGroup.SetSelected([]string{"Photos"})

	cfg := a.collectConfig()
	assert.Equal(t, a.sourceEntry.Text, cfg.SourceDir)
	assert.Equal(t, "/archive", cfg.TargetDir)
	assert.Equal(t, "2023", cfg.TargetYear)
	assert.Equal(t, []string{"pdf", "jpg"}, cfg.FileTypes)
	assert.Equal(t, config.DuplicateSkip, cfg.DuplicateMode)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, []string{"Photos"}, cfg.IncludedFolders)
	assert.False(t, cfg.FilesOnly)
}

func TestLoadSettingsLeavesDryRunChecked(t *testing.T) {
	a := newTestApp(t)

	a.dryRunCheck.SetChecked(false)
	a.targetEntry.SetText("/archive")
	a.saveSettings()

	a.loadSettings()
	assert.True(t, a.dryRunCheck.Checked, "loading settings must not carry a live run over")
	assert.Equal(t, "/archive", a.targetEntry.Text)
}

func TestRefreshFoldersKeepsSelection(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, makeDirs(a.cfg.SourceDir, "Photos", "Work"))

	a.refreshFolders()
	assert.Equal(t, []string{"Photos", "Work"}, a.folderGroup.Options)

	a.folderGroup.SetSelected([]string{"Work"})
	a.refreshFolders()
	assert.Equal(t, []string{"Work"}, a.folderGroup.Selected)
}

func TestSplitTypes(t *testing.T) {
	assert.Nil(t, splitTypes(""))
	assert.Equal(t, []string{"pdf"}, splitTypes("pdf"))
	assert.Equal(t, []string{"pdf", "jpg"}, splitTypes(" pdf , jpg ,"))
}
