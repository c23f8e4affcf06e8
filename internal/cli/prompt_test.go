package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"yearsort/internal/cli"
	"yearsort/internal/organize"
	"yearsort/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmMove(t *testing.T) {
	plan := types.MovePlan{DestDir: "/docs/2023", DestName: "report.pdf", Kind: types.File}

	cases := map[string]bool{
		"y\n":   true,
		"yes\n": true,
		"Y\n":   true,
		"n\n":   false,
		"\n":    false, // default is no
	}
	for input, want := range cases {
		var out bytes.Buffer
		prompt := cli.NewPrompt(strings.NewReader(input), &out)
		got, err := prompt.ConfirmMove(plan)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestFileConflictChoices(t *testing.T) {
	cases := map[string]organize.Choice{
		"r\n":         organize.ChoiceRename,
		"overwrite\n": organize.ChoiceOverwrite,
		"s\n":         organize.ChoiceSkip,
		"q\n":         organize.ChoiceQuit,
	}
	for input, want := range cases {
		var out bytes.Buffer
		prompt := cli.NewPrompt(strings.NewReader(input), &out)
		choice, err := prompt.FileConflict("/src/a.txt", "/dest/a.txt")
		require.NoError(t, err)
		assert.Equal(t, want, choice, "input %q", input)
	}
}

func TestFileConflictReprompsOnJunkInput(t *testing.T) {
	var out bytes.Buffer
	prompt := cli.NewPrompt(strings.NewReader("x\nr\n"), &out)

	choice, err := prompt.FileConflict("/src/a.txt", "/dest/a.txt")
	require.NoError(t, err)
	assert.Equal(t, organize.ChoiceRename, choice)
	assert.Contains(t, out.String(), "Please answer")
}

func TestFileConflictDiffLoopsBack(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "incoming.txt")
	dest := filepath.Join(tmpDir, "existing.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello new world\n"), 0644))
	require.NoError(t, os.WriteFile(dest, []byte("hello old world\n"), 0644))

	var out bytes.Buffer
	prompt := cli.NewPrompt(strings.NewReader("d\ns\n"), &out)

	choice, err := prompt.FileConflict(src, dest)
	require.NoError(t, err)
	assert.Equal(t, organize.ChoiceSkip, choice, "diff must loop back to the prompt")
	assert.Contains(t, out.String(), "existing: "+dest)
	assert.Contains(t, out.String(), "incoming: "+src)
}

func TestDirConflictChoices(t *testing.T) {
	cases := map[string]organize.Choice{
		"r\n": organize.ChoiceRename,
		"m\n": organize.ChoiceMerge,
		"s\n": organize.ChoiceSkip,
		"q\n": organize.ChoiceQuit,
	}
	for input, want := range cases {
		var out bytes.Buffer
		prompt := cli.NewPrompt(strings.NewReader(input), &out)
		choice, err := prompt.DirConflict("/src/Project", "/dest/Project")
		require.NoError(t, err)
		assert.Equal(t, want, choice, "input %q", input)
	}
}

func TestConflictPromptTreatsEOFAsQuit(t *testing.T) {
	var out bytes.Buffer
	prompt := cli.NewPrompt(strings.NewReader(""), &out)

	choice, err := prompt.FileConflict("/src/a.txt", "/dest/a.txt")
	require.NoError(t, err)
	assert.Equal(t, organize.ChoiceQuit, choice)
}

func TestRenderSummaryListsAllOutcomes(t *testing.T) {
	stats := &types.RunStats{FilesMoved: 2, DirsMoved: 1, Renamed: 1, Skipped: 3}
	rendered := cli.RenderSummary(stats)

	assert.Contains(t, rendered, "Files moved")
	assert.Contains(t, rendered, "Directories moved")
	assert.Contains(t, rendered, "Skipped")
	assert.Contains(t, rendered, "Errors")
}
