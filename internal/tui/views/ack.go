// Package views holds stateless render helpers for the full-screen surfaces.
package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nicobailon/runtree/internal/launcher"
	"github.com/nicobailon/runtree/internal/tui/theme"
)

const divider = "────────────────────────"

// RenderRunning is shown in the brief window between handing the terminal to
// the child and getting it back.
func RenderRunning(path string) string {
	header := theme.TitleStyle.Render("▶ running")
	return theme.ModalStyle.Render(
		header + "\n" + theme.SeparatorStyle.Render(divider) + "\n\n" +
			theme.TextStyle.Render(path))
}

// RenderAck is the acknowledgment screen after an execution: the file, how it
// ended, and the prompt back into the browser.
func RenderAck(path string, res launcher.Result) string {
	header := theme.TitleStyle.Render("▶ finished")
	var status string
	switch {
	case res.SpawnErr != nil:
		header = theme.ErrorStyle.Render("▶ failed to start")
		status = theme.ErrorStyle.Render(res.SpawnErr.Error())
	case res.ExitCode == 0:
		status = theme.SuccessStyle.Render("exit status 0")
	default:
		status = theme.WarnStyle.Render(fmt.Sprintf("exit status %d", res.ExitCode))
	}
	prompt := theme.DimStyle.Render("press any key to return")
	return theme.ModalStyle.Render(
		header + "\n" + theme.SeparatorStyle.Render(divider) + "\n\n" +
			theme.TextStyle.Render(path) + "\n" + status + "\n\n" + prompt)
}

// RenderFooter renders the key-hint line.
func RenderFooter(hints [][2]string) string {
	out := ""
	for i, h := range hints {
		if i > 0 {
			out += theme.SeparatorStyle.Render("  ·  ")
		}
		out += theme.KeyStyle.Render(h[0]) + " " + theme.DimStyle.Render(h[1])
	}
	return out
}

// RenderHeader renders the logo plus the directory being browsed.
func RenderHeader(dir string, width int) string {
	path := theme.SubTextStyle.Render(truncatePath(dir, width-lipgloss.Width(theme.Logo)-3))
	return theme.Logo + "  " + path
}

func truncatePath(path string, maxLen int) string {
	if maxLen < 10 {
		maxLen = 10
	}
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
