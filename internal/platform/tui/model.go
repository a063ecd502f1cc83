package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neonbreaker/internal/config"
	"github.com/vovakirdan/neonbreaker/internal/core"
	"github.com/vovakirdan/neonbreaker/internal/game"
)

// DefaultHoldTicks keeps a direction key "pressed" for about 160ms of
// direction ticks.
const DefaultHoldTicks = 10

// Options configures a play session.
type Options struct {
	Runtime   core.RuntimeConfig
	Game      config.Config
	Logger    *log.Logger // Nil discards logs
	HoldTicks int         // Zero uses DefaultHoldTicks
}

// Model is the Bubble Tea model for a Neon Breaker session.
type Model struct {
	game    *game.Game
	screen  *core.Screen
	runtime core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	held    *core.HeldInput
	logger  *log.Logger
	session string

	last     game.StepResult
	quitting bool
}

// NewModel creates a new Bubble Tea model with a fresh game.
func NewModel(opts Options) Model {
	rt := opts.Runtime.Normalized()
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	session := uuid.NewString()

	holdTicks := opts.HoldTicks
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}

	return Model{
		game:    game.New(opts.Game, rt.Seed),
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		runtime: rt,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    core.NewHeldInput(holdTicks),
		logger:  logger.With("session", session),
		session: session,
	}
}

// Init starts the frame and direction timers.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"seed", m.runtime.Seed,
		"fps", m.runtime.TickRate,
		"size", fmt.Sprintf("%dx%d", m.runtime.ScreenW, m.runtime.ScreenH))
	return tea.Batch(tickCmd(m.runtime.TickRate), directionTickCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case DirectionTickMsg:
		m.held.Tick()
		m.game.SetPaddleDirection(m.held.Direction())
		return m, directionTickCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended",
			"score", m.last.Score,
			"lives", m.last.Lives,
			"phase", m.game.Phase(),
			"ticks", m.last.Tick)
		return m, tea.Quit
	case core.ActionLeft:
		// A fresh press cancels the opposite direction; there is no key-up.
		m.held.Release(core.ActionRight)
		m.held.Press(action)
	case core.ActionRight:
		m.held.Release(core.ActionLeft)
		m.held.Press(action)
	case core.ActionLaunch:
		switch m.game.Phase() {
		case game.PhaseStart:
			m.game.RequestStart()
		case game.PhaseGameOver, game.PhaseWin:
			m.game.RequestRestart()
		case game.PhaseRunning:
		}
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.runtime.ScreenW, m.playHeight())
	case core.ActionNone:
	}

	return m, nil
}

// handleMouse moves the paddle under the pointer while dragging.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	drag := msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if !drag && !press {
		return m, nil
	}

	world := m.game.World()
	v := NewViewport(m.screen.Width(), m.screen.Height(), world.Width, world.Height)
	m.game.SetPaddleAbsoluteX(v.FieldX(msg.X))
	return m, nil
}

// handleResize processes window resize events.
// The field has a fixed size, so the game keeps running and only the
// mapping to cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.playHeight())
	m.help.Width = msg.Width
	return m, nil
}

// playHeight is the number of rows left for the game after the help view.
func (m Model) playHeight() int {
	rows := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
	}
	return max(m.runtime.ScreenH-rows, 1)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.last = m.game.Step()
	m.logEvents(m.last)
	return m, tickCmd(m.runtime.TickRate)
}

func (m Model) logEvents(res game.StepResult) {
	for _, e := range res.Events {
		switch e.Kind {
		case game.EventPhaseChanged:
			m.logger.Info("phase changed",
				"from", e.From,
				"to", e.To,
				"trigger", e.Trigger,
				"score", res.Score,
				"lives", res.Lives)
		case game.EventBrickDestroyed:
			m.logger.Debug("brick destroyed", "row", e.Row, "col", e.Col, "score", res.Score)
		case game.EventLifeLost:
			m.logger.Debug("life lost", "lives", res.Lives, "tick", res.Tick)
		case game.EventWallBounce, game.EventPaddleHit:
		}
	}
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	snap := m.game.Snapshot()
	Draw(m.screen, &snap)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".neonbreaker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("neonbreaker_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	Draw(m.screen, &snap)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Game returns the running game.
func (m Model) Game() *game.Game {
	return m.game
}

// Session returns the session identifier used in logs.
func (m Model) Session() string {
	return m.session
}

// Run starts the Bubble Tea program for one play session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag events move the paddle
	)

	_, err := p.Run()
	return err
}
