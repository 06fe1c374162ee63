package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nicobailon/runtree/internal/tui/theme"
)

type toastType int

const (
	toastSuccess toastType = iota
	toastError
	toastWarning
	toastInfo
)

const toastDuration = 3 * time.Second

type toast struct {
	message   string
	kind      toastType
	expiresAt time.Time
}

func newToast(message string, kind toastType) *toast {
	return &toast{message: message, kind: kind, expiresAt: time.Now().Add(toastDuration)}
}

func errToast(err error, context string) *toast {
	if context != "" {
		return newToast(fmt.Sprintf("%s: %v", context, err), toastError)
	}
	return newToast(err.Error(), toastError)
}

func (t *toast) expired() bool {
	return time.Now().After(t.expiresAt)
}

type toastExpiredMsg struct{}

func toastExpireCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func (t *toast) render() string {
	var style lipgloss.Style
	var icon string

	switch t.kind {
	case toastSuccess:
		style = theme.SuccessStyle
		icon = "✓ "
	case toastError:
		style = theme.ErrorStyle
		icon = "✗ "
	case toastWarning:
		style = theme.WarnStyle
		icon = "! "
	case toastInfo:
		style = theme.SubTextStyle
		icon = "· "
	}
	return style.Render(icon + t.message)
}

// execFinishedMsg arrives once the child interpreter has exited (or failed to
// start) and the terminal has been handed back to the program.
type execFinishedMsg struct {
	path string
	err  error
}
