package organize_test

import (
	"testing"

	"yearsort/internal/config"
	"yearsort/internal/organize"
	"yearsort/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestFilesOnlyRejectsEveryDirectory(t *testing.T) {
	cfg := config.New()
	cfg.FilesOnly = true
	cfg.IncludedFolders = []string{"Project"}
	filter := organize.NewSelectionFilter(cfg)

	assert.False(t, filter.Processable("Project", types.Directory),
		"files-only must win even over an include listing")
	assert.True(t, filter.Processable("Project", types.File))
}

func TestIncludeListIsStrictAllowList(t *testing.T) {
	cfg := config.New()
	cfg.IncludedFolders = []string{"Documents", "Photos"}
	cfg.ExcludedFolders = []string{"Documents"}
	filter := organize.NewSelectionFilter(cfg)

	assert.True(t, filter.Processable("Documents", types.Directory),
		"include must override the exclude list")
	assert.True(t, filter.Processable("Photos", types.Directory))
	assert.False(t, filter.Processable("Music", types.Directory))
	assert.False(t, filter.Processable("loose.txt", types.File),
		"include mode rejects entries absent from the list, files too")
}

func TestIncludeOverridesBuiltinYearFolderExclusion(t *testing.T) {
	cfg := config.New()
	filter := organize.NewSelectionFilter(cfg)
	assert.False(t, filter.Processable("2023", types.Directory),
		"already-organized year folders are excluded by default")

	cfg.IncludedFolders = []string{"2023"}
	filter = organize.NewSelectionFilter(cfg)
	assert.True(t, filter.Processable("2023", types.Directory),
		"an explicit include must allow re-processing a year folder")
}

func TestEmptyIncludeListFallsThroughToExcludes(t *testing.T) {
	// Regression: an empty include list must not behave like an
	// allow-everything list, nor like a reject-everything one.
	cfg := config.New()
	cfg.ExcludedFolders = []string{"Archive"}
	filter := organize.NewSelectionFilter(cfg)

	assert.False(t, filter.Processable("Archive", types.Directory))
	assert.True(t, filter.Processable("Reports", types.Directory))
	assert.True(t, filter.Processable("report.pdf", types.File))
}

func TestExcludeMatchesFilesToo(t *testing.T) {
	cfg := config.New()
	cfg.ExcludedFolders = []string{"keepme.txt"}
	filter := organize.NewSelectionFilter(cfg)

	assert.False(t, filter.Processable("keepme.txt", types.File))
}

func TestNameMatchingIsExact(t *testing.T) {
	cfg := config.New()
	cfg.ExcludedFolders = []string{"Doc"}
	filter := organize.NewSelectionFilter(cfg)

	assert.True(t, filter.Processable("Documents", types.Directory),
		"exclusion must not match on substrings")
	assert.False(t, filter.Processable("Doc", types.Directory))
}
