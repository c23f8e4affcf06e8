package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"yearsort/internal/config"
	"yearsort/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := config.New()

	assert.True(t, cfg.DryRun, "dry run must be enabled by default")
	assert.Equal(t, config.DuplicateRename, cfg.DuplicateMode)
	assert.Empty(t, cfg.IncludedFolders)
	assert.Equal(t, 2, cfg.Watch.DebounceSeconds)
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
}

func TestSaveNeverPersistsDryRun(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := config.New()
	cfg.SourceDir = tmpDir
	cfg.DryRun = false // user disabled it for this run
	cfg.Verbose = true
	cfg.ExcludedFolders = []string{"Archive"}
	require.NoError(t, config.Save(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dry_run", "dry run flag must never reach disk")

	loaded, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.DryRun, "dry run must default to enabled on load")
	assert.True(t, loaded.Verbose)
	assert.Equal(t, []string{"Archive"}, loaded.ExcludedFolders)
	assert.Equal(t, tmpDir, loaded.SourceDir)
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duplicate_mode: skip\n"), 0644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DuplicateSkip, cfg.DuplicateMode)
	assert.Equal(t, 2, cfg.Watch.DebounceSeconds, "unset fields keep defaults")
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source_dir: [unclosed"), 0644))

	_, err := config.LoadFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		cfg := config.NewTestConfig(tmpDir)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing source", func(t *testing.T) {
		cfg := config.New()
		err := cfg.Validate()
		assert.Error(t, err)
		assert.True(t, errors.IsConfigError(err))
	})

	t.Run("source does not exist", func(t *testing.T) {
		cfg := config.NewTestConfig(filepath.Join(tmpDir, "missing"))
		assert.Error(t, cfg.Validate())
	})

	t.Run("source is a file", func(t *testing.T) {
		file := filepath.Join(tmpDir, "plain.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
		cfg := config.NewTestConfig(file)
		assert.Error(t, cfg.Validate())
	})

	t.Run("malformed year filter", func(t *testing.T) {
		cfg := config.NewTestConfig(tmpDir)
		cfg.TargetYear = "20x3"
		assert.Error(t, cfg.Validate())

		cfg.TargetYear = "2023"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("invalid duplicate mode", func(t *testing.T) {
		cfg := config.NewTestConfig(tmpDir)
		cfg.DuplicateMode = "shrug"
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty file type", func(t *testing.T) {
		cfg := config.NewTestConfig(tmpDir)
		cfg.FileTypes = []string{"pdf", ""}
		assert.Error(t, cfg.Validate())
	})

	t.Run("target may be missing", func(t *testing.T) {
		cfg := config.NewTestConfig(tmpDir)
		cfg.TargetDir = filepath.Join(tmpDir, "not-yet-created")
		assert.NoError(t, cfg.Validate())
	})
}

func TestEffectiveTarget(t *testing.T) {
	cfg := config.New()
	cfg.SourceDir = "/docs"
	assert.Equal(t, "/docs", cfg.EffectiveTarget())

	cfg.TargetDir = "/sorted"
	assert.Equal(t, "/sorted", cfg.EffectiveTarget())
}
