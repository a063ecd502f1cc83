package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neonbreaker/internal/config"
	"github.com/vovakirdan/neonbreaker/internal/core"
	"github.com/vovakirdan/neonbreaker/internal/game"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Game:    config.DefaultConfig(),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runes("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runes("d"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionLaunch},
		{"help", runes("?"), core.ActionHelp},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Action(tt.msg))
		})
	}
}

func TestViewportMapping(t *testing.T) {
	v := NewViewport(80, 23, 500, 700)
	assert.Equal(t, 78, v.W)
	assert.Equal(t, 20, v.H)

	x, y := v.Cell(core.V(0, 0))
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)

	x, y = v.Cell(core.V(499.9, 699.9))
	assert.Equal(t, 78, x)
	assert.Equal(t, 21, y)

	// Out-of-field points clamp to the border cells
	x, y = v.Cell(core.V(-50, 900))
	assert.Equal(t, 1, x)
	assert.Equal(t, 21, y)

	start, n := v.Span(18, 56)
	assert.Equal(t, 3, start)
	assert.Equal(t, 10, n)

	assert.InDelta(t, 3.2, v.FieldX(1), 0.01)
	assert.InDelta(t, 496.8, v.FieldX(200), 0.01)
}

func TestFade(t *testing.T) {
	assert.Equal(t, core.Color("#ff00ea"), Fade("#ff00ea", 1))
	assert.Equal(t, core.Color("#000000"), Fade("#ff00ea", 0))
	assert.Equal(t, core.Color("#800075"), Fade("#ff00ea", 0.5))
	assert.Equal(t, core.Color("#ff00ea"), Fade("#ff00ea", 3), "alpha is clamped")
	assert.Equal(t, core.Color("nope"), Fade("nope", 0.5))
}

func TestDrawTitleScreen(t *testing.T) {
	g := game.New(config.DefaultConfig(), 1)
	snap := g.Snapshot()
	s := core.NewScreen(80, 23)

	Draw(s, &snap)
	out := s.String()

	assert.Contains(t, out, "NEON BRICK BREAKER")
	assert.Contains(t, out, "Press SPACE to Start")
	assert.Contains(t, s.Row(0), "SCORE: 0")
	assert.Contains(t, s.Row(0), "LIVES: 5")
	assert.Contains(t, s.Row(0), "42/42")
	assert.Equal(t, '┌', s.GetCell(0, 1).Rune)
	assert.Equal(t, '┘', s.GetCell(79, 22).Rune)
}

func TestDrawRunningFrame(t *testing.T) {
	g := game.New(config.DefaultConfig(), 1)
	g.RequestStart()
	g.Step()
	snap := g.Snapshot()
	s := core.NewScreen(80, 23)

	Draw(s, &snap)
	out := s.String()

	assert.NotContains(t, out, "Press SPACE")
	assert.Contains(t, out, string(BallChar))
	assert.Contains(t, out, string(PaddleChar))
	assert.Contains(t, out, string(BrickChar))

	v := NewViewport(80, 23, snap.Width, snap.Height)
	bx, by := v.Cell(core.V(snap.Ball.X, snap.Ball.Y))
	cell := s.GetCell(bx, by)
	assert.Equal(t, BallChar, cell.Rune)
	assert.Equal(t, snap.Ball.Color, cell.Color)
}

func TestDrawTerminalOverlays(t *testing.T) {
	tests := []struct {
		name  string
		phase game.Phase
		want  string
	}{
		{"game over", game.PhaseGameOver, "GAME OVER"},
		{"win", game.PhaseWin, "YOU WIN!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := game.New(config.DefaultConfig(), 1)
			snap := g.Snapshot()
			snap.Phase = tt.phase
			s := core.NewScreen(80, 23)

			Draw(s, &snap)
			assert.Contains(t, s.String(), tt.want)
			assert.Contains(t, s.String(), "Press SPACE to Restart")
		})
	}
}

func TestDrawTooSmall(t *testing.T) {
	g := game.New(config.DefaultConfig(), 1)
	snap := g.Snapshot()
	s := core.NewScreen(20, 10)

	Draw(s, &snap)
	assert.Contains(t, s.String(), "Terminal too small")
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "plain", core.ColorDefault)
	assert.Equal(t, s.String(), RenderScreen(s), "uncolored cells render as-is")

	s.DrawTextColored(0, 1, "neon", "#00fff7")
	out := RenderScreen(s)
	assert.Contains(t, out, "neon")
	assert.Equal(t, 2, strings.Count(out, "\n")+1)
}

func TestModelStartAndSteer(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, game.PhaseStart, m.Game().Phase())
	assert.NotEmpty(t, m.Session())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd, "tick loop continues")
	require.Equal(t, game.PhaseRunning, m.Game().Phase())

	startX := m.Game().World().Paddle.X
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd = update(t, m, DirectionTickMsg{})
	assert.NotNil(t, cmd, "direction timer continues")
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, startX-8, m.Game().World().Paddle.X)

	// Switching direction cancels the previous one immediately
	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, DirectionTickMsg{})
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, startX, m.Game().World().Paddle.X)
}

func TestModelHeldKeyExpires(t *testing.T) {
	m := NewModel(Options{
		Runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Game:      config.DefaultConfig(),
		HoldTicks: 3,
	})
	m, _ = update(t, m, runes(" "))
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, DirectionTickMsg{})
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, 8.0, m.Game().World().Paddle.DX)

	// No auto-repeat arrives, so the flag runs out
	m, _ = update(t, m, DirectionTickMsg{})
	m, _ = update(t, m, DirectionTickMsg{})
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, 0.0, m.Game().World().Paddle.DX)
}

func TestModelMouseDrag(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes(" "))
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, 0.0, m.Game().World().Paddle.X)

	// Plain motion without a button is ignored
	m, _ = update(t, m, tea.MouseMsg{X: 70, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, 0.0, m.Game().World().Paddle.X)
}

func TestModelLaunchRestartsAfterGameOver(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes(" "))
	m, _ = update(t, m, TickMsg{})

	w := m.Game().World()
	w.Lives = 1
	w.Ball.Pos = core.V(50, 706)
	w.Ball.Vel = core.V(0, 5)
	m, _ = update(t, m, TickMsg{})
	require.Equal(t, game.PhaseGameOver, m.Game().Phase())
	assert.Contains(t, m.View(), "GAME OVER")

	m, _ = update(t, m, runes(" "))
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, game.PhaseRunning, m.Game().Phase())
	assert.Equal(t, 5, m.Game().World().Lives)
}

func TestModelResizeAndHelp(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())

	m, _ = update(t, m, runes("?"))
	assert.Equal(t, 37, m.screen.Height())
	assert.Equal(t, game.PhaseStart, m.Game().Phase(), "resize does not reset the game")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, runes("q"))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
