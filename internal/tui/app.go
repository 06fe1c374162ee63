package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/nicobailon/runtree/internal/browser"
	"github.com/nicobailon/runtree/internal/config"
	"github.com/nicobailon/runtree/internal/launcher"
	"github.com/nicobailon/runtree/internal/preview"
	"github.com/nicobailon/runtree/internal/tui/theme"
	"github.com/nicobailon/runtree/internal/tui/views"
)

type Deps struct {
	Lister browser.Lister
	Cfg    *config.Config
	Log    *logrus.Logger
}

// runOutcome is what the acknowledgment screen shows. nil while the child is
// still running.
type runOutcome struct {
	Path   string
	Result launcher.Result
}

type model struct {
	deps    Deps
	state   browser.State
	lastRun *runOutcome
	preview viewport.Model
	toast   *toast
	width   int
	height  int
	ready   bool
}

type App struct {
	initial model
}

func New(st browser.State, deps Deps) *App {
	return &App{initial: initialModel(st, deps)}
}

func (a *App) Run() error {
	p := tea.NewProgram(a.initial, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func initialModel(st browser.State, deps Deps) model {
	m := model{
		deps:    deps,
		state:   st,
		preview: viewport.New(0, 0),
	}
	m.syncPreview()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = m.previewWidth()
		m.preview.Height = m.bodyHeight()
		m.ready = true
		return m, nil

	case execFinishedMsg:
		res := launcher.Classify(msg.err)
		m.lastRun = &runOutcome{Path: msg.path, Result: res}
		entry := m.deps.Log.WithField("file", msg.path)
		if res.SpawnErr != nil {
			entry.WithError(res.SpawnErr).Error("spawn failed")
		} else {
			entry.WithField("exit_status", res.ExitCode).Info("execution finished")
		}
		return m, nil

	case toastExpiredMsg:
		if m.toast != nil && m.toast.expired() {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey dispatches on mode and key: exactly one transition per event.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state.Mode == browser.AwaitingAck {
		return m.acknowledge()
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		m.state = m.state.MoveUp()
		m.syncPreview()
		return m, nil

	case "down", "j":
		m.state = m.state.MoveDown()
		m.syncPreview()
		return m, nil

	case "r":
		st, err := m.state.Reload(m.deps.Lister)
		if err != nil {
			m.deps.Log.WithError(err).Warn("reload failed")
			m.toast = errToast(err, "reload")
			return m, toastExpireCmd()
		}
		m.state = st
		m.syncPreview()
		return m, nil

	case "y":
		path, ok := m.state.SelectionPath()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(path); err != nil {
			m.toast = errToast(err, "clipboard")
			return m, toastExpireCmd()
		}
		m.toast = newToast("path copied", toastInfo)
		return m, toastExpireCmd()

	case "enter":
		return m.confirm()
	}
	return m, nil
}

func (m model) confirm() (tea.Model, tea.Cmd) {
	sel, ok := m.state.Selection()
	if !ok {
		return m, nil
	}

	if sel.IsDir {
		var st browser.State
		var err error
		if sel.Name == browser.ParentName {
			st, err = m.state.Ascend(m.deps.Lister)
		} else {
			st, err = m.state.Descend(m.deps.Lister, sel.Name)
		}
		if err != nil {
			m.deps.Log.WithError(err).Warn("traversal failed")
			m.toast = errToast(err, "open")
			return m, toastExpireCmd()
		}
		m.state = st
		m.syncPreview()
		return m, nil
	}

	path, _ := m.state.SelectionPath()
	m.state.Mode = browser.AwaitingAck
	m.lastRun = nil

	cmd, err := launcher.Command(path)
	if err != nil {
		// never ran: report it on the ack screen like any other outcome
		m.lastRun = &runOutcome{Path: path, Result: launcher.Result{SpawnErr: err}}
		m.deps.Log.WithField("file", path).WithError(err).Error("spawn failed")
		return m, nil
	}
	m.deps.Log.WithField("file", path).Info("launching")
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return execFinishedMsg{path: path, err: err}
	})
}

// acknowledge leaves AwaitingAck on any key: regenerate the listing and keep
// the cursor in place, clamped in case entries vanished while the child ran.
func (m model) acknowledge() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	st, err := m.state.ReloadClamped(m.deps.Lister)
	if err != nil {
		m.deps.Log.WithError(err).Warn("reload after execution failed")
		m.toast = errToast(err, "reload")
		cmd = toastExpireCmd()
		st = m.state
	}
	st.Mode = browser.Browsing
	m.state = st
	m.lastRun = nil
	m.syncPreview()
	return m, cmd
}

func (m *model) syncPreview() {
	sel, ok := m.state.Selection()
	if !ok {
		m.preview.SetContent(theme.DimStyle.Render("(nothing selected)"))
		return
	}
	if sel.IsDir {
		m.preview.SetContent(theme.DimStyle.Render("directory"))
		return
	}
	path, _ := m.state.SelectionPath()
	m.preview.SetContent(preview.Head(path, m.deps.Cfg.PreviewLines))
	m.preview.GotoTop()
}

// layout

func (m model) listWidth() int {
	w := int(float64(m.width) * 0.4)
	if w < 28 {
		w = 28
	}
	return w
}

func (m model) previewWidth() int {
	w := m.width - m.listWidth() - 6
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) bodyHeight() int {
	h := m.height - 5
	if h < 3 {
		h = 3
	}
	return h
}

func (m model) View() string {
	if !m.ready {
		return ""
	}

	if m.state.Mode == browser.AwaitingAck {
		var screen string
		if m.lastRun == nil {
			path, _ := m.state.SelectionPath()
			screen = views.RenderRunning(path)
		} else {
			screen = views.RenderAck(m.lastRun.Path, m.lastRun.Result)
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screen)
	}

	header := views.RenderHeader(m.state.Dir, m.width)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(m.listWidth(), m.bodyHeight()),
		theme.PreviewFrameStyle.Render(m.preview.View()),
	)
	footer := views.RenderFooter([][2]string{
		{"↑/↓", "move"},
		{"enter", "open/run"},
		{"r", "reload"},
		{"y", "copy path"},
		{"q", "quit"},
	})
	if m.toast != nil {
		footer = m.toast.render()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (m model) renderList(width, height int) string {
	entries := m.state.Entries
	if len(entries) == 0 {
		return theme.ListFrameStyle.Render(theme.DimStyle.Render("(no entries)"))
	}

	start := 0
	if len(entries) > height {
		start = m.state.Selected - height/2
		if start < 0 {
			start = 0
		}
		if start > len(entries)-height {
			start = len(entries) - height
		}
	}
	end := start + height
	if end > len(entries) {
		end = len(entries)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		e := entries[i]
		name := e.Name
		if e.IsDir && name != browser.ParentName {
			name += "/"
		}
		if len(name) > width-4 && width > 5 {
			name = name[:width-5] + "…"
		}
		if i == m.state.Selected {
			b.WriteString(theme.CursorLineStyle.Render("▸ " + name))
		} else if e.IsDir {
			b.WriteString("  " + theme.DirStyle.Render(name))
		} else {
			b.WriteString("  " + theme.FileStyle.Render(name))
		}
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return theme.ListFrameStyle.Width(width).Render(b.String())
}
