// Package tui provides the BubbleTea-based demo application for the toast
// widget.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/toastui/internal/audio"
	"github.com/jmylchreest/toastui/internal/config"
	"github.com/jmylchreest/toastui/internal/theme"
	"github.com/jmylchreest/toastui/internal/toast"
)

// ThemeReloadedMsg is sent into the program when the watched theme file
// changes.
type ThemeReloadedMsg struct {
	Theme *theme.Theme
}

// clickedMsg reports that a toast click callback ran.
type clickedMsg struct{}

// Model is the demo TUI model.
type Model struct {
	cfg    *config.Config
	theme  *theme.Theme
	logger *slog.Logger

	toasts *toast.List
	player *audio.Player

	keys     KeyMap
	help     help.Model
	showHelp bool

	width  int
	height int
	ready  bool

	status   string
	lastPush time.Time
	counter  int
	progress int
}

// New creates a new demo model.
func New(cfg *config.Config, th *theme.Theme, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if th == nil {
		th = theme.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	toasts := toast.NewList(
		toast.WithTheme(th),
		toast.WithLogger(logger),
		toast.WithWidth(cfg.Display.Width),
		toast.WithMargins(cfg.Display.MarginX, cfg.Display.MarginY),
		toast.WithGap(cfg.Display.Gap),
		toast.WithDelay(cfg.AutohideDelay()),
	)

	var player *audio.Player
	if cfg.Sound.Enabled {
		player = audio.NewPlayer(logger)
		player.SetVolume(cfg.Sound.Volume)
	}

	return Model{
		cfg:    cfg,
		theme:  th,
		logger: logger,
		toasts: toasts,
		player: player,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the demo.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, m.toasts.Update(msg)

	case ThemeReloadedMsg:
		m.theme = msg.Theme
		m.toasts.SetTheme(msg.Theme)
		m.status = "theme reloaded: " + msg.Theme.Name
		return m, nil

	case clickedMsg:
		m.status = "click callback ran"
		return m, nil
	}

	// Timer expiries and animation frames belong to the list.
	return m, m.toasts.Update(msg)
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.PushInfo):
		m.counter++
		n := toast.Info(fmt.Sprintf("Indexed %d files", m.counter*37)).
			WithTitle("Indexer")
		return m.push(n)

	case key.Matches(msg, m.keys.PushSuccess):
		m.counter++
		n := toast.Success(fmt.Sprintf("Build #%d finished", m.counter)).
			WithTitle("Build")
		return m.push(n)

	case key.Matches(msg, m.keys.PushWarning):
		n := toast.Warning("Disk usage above 90%").WithTitle("Storage")
		return m.push(n)

	case key.Matches(msg, m.keys.PushError):
		n := toast.Error("Connection to upstream lost").WithTitle("Network")
		return m.push(n)

	case key.Matches(msg, m.keys.Progress):
		m.progress += 25
		if m.progress > 100 {
			m.progress = 0
		}
		n := toast.Info(fmt.Sprintf("Sync %d%% complete", m.progress)).
			WithTitle("Sync").
			WithID("sync-progress").
			WithIcon("download")
		return m.push(n)

	case key.Matches(msg, m.keys.Sticky):
		n := toast.Warning("Pending migration requires review").
			WithTitle("Migrations").
			WithAutohide(false)
		return m.push(n)

	case key.Matches(msg, m.keys.Clickable):
		n := toast.New("Update available, click to apply").
			WithTitle("Updater").
			WithOnClick(func() tea.Cmd {
				return func() tea.Msg { return clickedMsg{} }
			})
		return m.push(n)

	case key.Matches(msg, m.keys.Dismiss):
		if id, ok := m.newest(func(n toast.Notification) bool { return !n.Autohide }); ok {
			m.toasts.Dismiss(id)
			m.status = "dismissed " + shortID(id)
		}
		return m, nil

	case key.Matches(msg, m.keys.Click):
		if id, ok := m.newest(func(n toast.Notification) bool { return n.OnClick != nil }); ok {
			return m, m.toasts.Click(id)
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.toasts.Clear()
		m.status = "cleared"
		return m, nil
	}

	return m, nil
}

// push hands a notification to the list and plays its sound if configured.
func (m Model) push(n toast.Notification) (tea.Model, tea.Cmd) {
	m.lastPush = time.Now()
	m.status = ""
	cmds := []tea.Cmd{m.toasts.Push(n)}
	if path := m.cfg.SoundFor(n.Type.String()); path != "" && m.player != nil {
		player := m.player
		cmds = append(cmds, func() tea.Msg {
			_ = player.Play(path)
			return nil
		})
	}
	return m, tea.Batch(cmds...)
}

// newest returns the id of the most recent live notification matching the
// predicate.
func (m Model) newest(match func(toast.Notification) bool) (string, bool) {
	ns := m.toasts.Notifications()
	for i := len(ns) - 1; i >= 0; i-- {
		if match(ns[i]) {
			return ns[i].ID, true
		}
	}
	return "", false
}

// View renders the demo with the toast stack overlaid.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	background := m.viewBackground()
	return m.toasts.Overlay(background)
}

func (m Model) viewBackground() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Title).
		Padding(0, 1)

	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	s := titleStyle.Render("toastui demo") + "\n\n"

	live := m.toasts.Len()
	visible := len(m.toasts.Window())
	s += fmt.Sprintf(" live: %d  visible: %d\n", live, visible)

	if !m.lastPush.IsZero() {
		s += mutedStyle.Render(" last push "+humanize.Time(m.lastPush)) + "\n"
	}
	if m.status != "" {
		s += mutedStyle.Render(" "+m.status) + "\n"
	}

	s += "\n"
	for _, n := range m.toasts.Notifications() {
		marker := " "
		if !n.Autohide {
			marker = "*"
		}
		s += fmt.Sprintf(" %s [%s] %s\n", marker, n.Type, shortID(n.ID))
	}

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Render(s)

	var helpView string
	if m.showHelp {
		helpView = m.help.FullHelpView(m.keys.FullHelp())
	} else {
		helpView = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	return body + "\n" + helpView
}

// shortID truncates ids for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run starts the demo program. The returned program pointer is handed to the
// theme watcher so reloads can be sent into the update loop.
func Run(cfg *config.Config, th *theme.Theme, logger *slog.Logger, themePath string) error {
	m := New(cfg, th, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())

	var watcher *theme.Watcher
	if themePath != "" {
		var err error
		watcher, err = theme.NewWatcher(themePath, logger, func(t *theme.Theme) {
			p.Send(ThemeReloadedMsg{Theme: t})
		})
		if err != nil {
			logger.Warn("failed to create theme watcher", "error", err)
		} else if err := watcher.Start(); err != nil {
			logger.Warn("failed to start theme watcher", "error", err)
		}
	}

	_, err := p.Run()

	if watcher != nil {
		_ = watcher.Stop()
	}

	return err
}
