package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/termsnake/termsnake/internal/config"
	"github.com/termsnake/termsnake/internal/core"
	"github.com/termsnake/termsnake/internal/snake"
)

// mode is the explicit application state: the menu, an active session, or
// the game-over prompt.
type mode int

const (
	modeMenu mode = iota
	modePlaying
	modeGameOver
)

// Layout chrome around the playable field: HUD line plus separator on top,
// box border on all sides, status line at the bottom.
const (
	hudRows    = 2
	statusRows = 1
	borderCols = 2
	borderRows = 2
)

// Options configures a game run.
type Options struct {
	Config config.Config
	Width  int // Initial terminal width
	Height int // Initial terminal height
	Seed   int64
	Logger *log.Logger
}

// Model is the Bubble Tea model owning the whole application flow. It holds
// the single active session; nothing else keeps a reference to it.
type Model struct {
	mode     mode
	session  *snake.Session
	screen   *core.Screen
	cfg      config.Config
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	seed     int64
	seedUsed bool
	tickSeq  int
	quitting bool
}

// NewModel creates the application model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		mode:   modeMenu,
		screen: core.NewScreen(opts.Width, opts.Height),
		cfg:    opts.Config,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		width:  opts.Width,
		height: opts.Height,
		seed:   opts.Seed,
	}
}

// Init implements tea.Model. Ticking only starts with a session.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// A running session keeps its board; the new size is used when the
		// next session is constructed.
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey dispatches input according to the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Map(msg)

	if action == core.ActionQuit {
		m.logger.Info("quit requested")
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeMenu:
		if action == core.ActionConfirm {
			return m.startSession()
		}

	case modePlaying:
		switch action {
		case core.ActionUp:
			m.session.SetDirection(snake.DirUp)
		case core.ActionDown:
			m.session.SetDirection(snake.DirDown)
		case core.ActionLeft:
			m.session.SetDirection(snake.DirLeft)
		case core.ActionRight:
			m.session.SetDirection(snake.DirRight)
		case core.ActionRestart:
			return m.startSession()
		}

	case modeGameOver:
		switch action {
		case core.ActionRestart:
			return m.startSession()
		case core.ActionBack:
			m.session = nil
			m.mode = modeMenu
		}
	}

	return m, nil
}

// handleTick advances the session by one step and reschedules at the
// session's current interval, so level-ups take effect immediately.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.mode != modePlaying || msg.Seq != m.tickSeq {
		return m, nil
	}

	m.session.Step()

	if m.session.Over() {
		snap := m.session.Snapshot()
		m.logger.Info("game over", "score", snap.Score, "level", snap.Level, "length", len(snap.Snake))
		m.mode = modeGameOver
		return m, nil
	}

	return m, tickCmd(m.tickSeq, m.session.TickInterval())
}

// startSession builds a fresh session sized to the current window and
// switches to playing. Any previous session is discarded; its pending ticks
// die against the bumped sequence number.
func (m Model) startSession() (tea.Model, tea.Cmd) {
	playW := core.Max(m.width-borderCols, m.cfg.Board.MinWidth)
	playH := core.Max(m.height-hudRows-statusRows-borderRows, m.cfg.Board.MinHeight)

	m.session = snake.NewSession(playW, playH, snake.NewRand(m.nextSeed()), m.cfg.Tuning())
	m.mode = modePlaying
	m.tickSeq++

	snap := m.session.Snapshot()
	m.logger.Info("session started", "width", snap.Width, "height", snap.Height, "tick", m.session.TickInterval())

	return m, tickCmd(m.tickSeq, m.session.TickInterval())
}

// nextSeed returns the configured seed for the first session only, so a
// --seed run is reproducible while every restart still gets fresh apples.
func (m *Model) nextSeed() int64 {
	if m.seed != 0 && !m.seedUsed {
		m.seedUsed = true
		return m.seed
	}
	return time.Now().UnixNano()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == modeMenu {
		return m.viewMenu()
	}
	return m.viewGame()
}

// Run starts the Bubble Tea program and blocks until the user quits.
// The alternate screen and raw mode are acquired and released by Bubble Tea
// itself, including on error paths, so a failure never leaves the terminal
// broken.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
