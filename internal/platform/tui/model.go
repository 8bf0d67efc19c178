// Package tui provides the Bubble Tea integration for the tetris game.
// It maps keys to game actions, feeds them to the engine and draws what the
// engine reports.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Model is the Bubble Tea model for a tetris session.
type Model struct {
	game      *tetris.Game
	view      *boardView
	screen    *core.Screen
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger
	config    core.RuntimeConfig
	quitting  bool
}

// NewModel creates a Bubble Tea model around a new game. The model
// registers itself as the game's first renderer.
func NewModel(gameCfg tetris.Config, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game, err := tetris.New(gameCfg)
	if err != nil {
		return Model{}, err
	}
	game.SetLogger(logger)

	view := newBoardView(game.Grid())
	game.AddRenderer(view)

	w, h := view.Size()
	return Model{
		game:      game,
		view:      view,
		screen:    core.NewScreen(w, h),
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		logger:    logger,
		config:    cfg,
	}, nil
}

// Game returns the engine driven by the model.
func (m Model) Game() *tetris.Game {
	return m.game
}

// Init implements tea.Model. Nothing moves until the player presses a key.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. The terminal only reports presses,
// so every key event is delivered as a press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keyMapper.MapKey(msg, m.game.Phase())
	if action == core.ActionNone {
		return m, nil
	}

	outcome := m.game.HandleInput(action, true)
	m.logger.Debug("input", "key", msg.String(), "action", action, "outcome", outcome)

	switch outcome {
	case tetris.OutcomeQuit:
		m.quitting = true
		return m, tea.Quit
	case tetris.OutcomeHandled:
		if action == core.ActionAcknowledgeLoss {
			m.view.dismissLoss()
		}
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.Draw(m.screen, m.game.Phase())
	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		"",
		m.help.View(m.keyMapper.Keys()),
	)

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for a new game.
func Run(gameCfg tetris.Config, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(gameCfg, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
