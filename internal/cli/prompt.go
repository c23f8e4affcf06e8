// Package cli implements the terminal side of the engine's interactive
// surface: per-entry confirmation, duplicate-conflict prompts and the
// folder picker used by --choose-includes / --choose-excludes.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"yearsort/internal/organize"
	"yearsort/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	choiceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
)

// Prompt answers the engine's interactive questions over a terminal. It
// implements organize.Prompter.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt creates a prompt reading from in and writing to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// NewTerminalPrompt creates a prompt bound to stdin/stdout.
func NewTerminalPrompt() *Prompt {
	return NewPrompt(os.Stdin, os.Stdout)
}

var _ organize.Prompter = (*Prompt)(nil)

// ConfirmMove asks whether one planned move should proceed.
func (p *Prompt) ConfirmMove(plan types.MovePlan) (bool, error) {
	fmt.Fprintf(p.out, "%s ", promptStyle.Render(
		fmt.Sprintf("Move %s %q to %s? [y/N]", plan.Kind, plan.DestName, plan.DestDir)))

	answer, err := p.readAnswer()
	if err != nil {
		return false, err
	}
	return answer == "y" || answer == "yes", nil
}

// FileConflict prompts for a duplicate file. The diff choice is a display
// side-channel: it renders a textual diff and loops back to re-prompt, so
// only terminal choices ever reach the resolver.
func (p *Prompt) FileConflict(src, dest string) (organize.Choice, error) {
	for {
		fmt.Fprintf(p.out, "%s\n%s ",
			warnStyle.Render(fmt.Sprintf("Destination already exists: %s", dest)),
			choiceStyle.Render("[r]ename / [o]verwrite / [s]kip / [d]iff / [q]uit:"))

		answer, err := p.readAnswer()
		if err == io.EOF {
			return organize.ChoiceQuit, nil
		}
		if err != nil {
			return organize.ChoiceSkip, err
		}

		switch answer {
		case "r", "rename":
			return organize.ChoiceRename, nil
		case "o", "overwrite":
			return organize.ChoiceOverwrite, nil
		case "s", "skip":
			return organize.ChoiceSkip, nil
		case "q", "quit":
			return organize.ChoiceQuit, nil
		case "d", "diff":
			p.showDiff(src, dest)
		default:
			fmt.Fprintln(p.out, warnStyle.Render("Please answer r, o, s, d or q."))
		}
	}
}

// DirConflict prompts for a duplicate directory. Overwrite is deliberately
// not offered; it would silently drop the destination's existing contents.
func (p *Prompt) DirConflict(src, dest string) (organize.Choice, error) {
	for {
		fmt.Fprintf(p.out, "%s\n%s ",
			warnStyle.Render(fmt.Sprintf("Destination directory already exists: %s", dest)),
			choiceStyle.Render("[r]ename / [m]erge / [s]kip / [q]uit:"))

		answer, err := p.readAnswer()
		if err == io.EOF {
			return organize.ChoiceQuit, nil
		}
		if err != nil {
			return organize.ChoiceSkip, err
		}

		switch answer {
		case "r", "rename":
			return organize.ChoiceRename, nil
		case "m", "merge":
			return organize.ChoiceMerge, nil
		case "s", "skip":
			return organize.ChoiceSkip, nil
		case "q", "quit":
			return organize.ChoiceQuit, nil
		default:
			fmt.Fprintln(p.out, warnStyle.Render("Please answer r, m, s or q."))
		}
	}
}

func (p *Prompt) readAnswer() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// showDiff renders existing-vs-incoming file content. Unreadable files are
// reported inline rather than failing the prompt.
func (p *Prompt) showDiff(src, dest string) {
	srcData, err := os.ReadFile(src)
	if err != nil {
		fmt.Fprintf(p.out, "cannot read %s: %v\n", src, err)
		return
	}
	destData, err := os.ReadFile(dest)
	if err != nil {
		fmt.Fprintf(p.out, "cannot read %s: %v\n", dest, err)
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(destData), string(srcData), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	fmt.Fprintf(p.out, "--- existing: %s\n+++ incoming: %s\n%s\n", dest, src, dmp.DiffPrettyText(diffs))
}
