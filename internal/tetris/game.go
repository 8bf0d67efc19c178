package tetris

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Config holds the construction-time settings of a Game.
type Config struct {
	Width         int           // Board columns (default 10)
	Height        int           // Board rows (default 18)
	InputInterval time.Duration // Minimum spacing of accepted inputs (default 50ms, negative disables)
	Seed          int64         // RNG seed for piece selection (0 = time based)
}

// DefaultConfig returns the standard 10x18 configuration.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		InputInterval: DefaultInputInterval,
	}
}

// Game owns the board and the active piece and advances them in response to
// input. It is not safe for concurrent use: deliver one input at a time.
type Game struct {
	board *Board
	piece *Piece // nil unless phase == PhaseActive
	phase Phase

	renderers []Renderer
	logger    *log.Logger

	// Waiting and Active throttle independently.
	waitingLimiter *inputLimiter
	activeLimiter  *inputLimiter

	rng  *rand.Rand
	now  func() time.Time
	pick func() Kind

	terminated bool
}

// New creates a game in PhaseWaiting with an empty board. Renderers are
// notified in the order given.
func New(cfg Config, renderers ...Renderer) (*Game, error) {
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.InputInterval == 0 {
		cfg.InputInterval = DefaultInputInterval
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	board, err := NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("tetris: new game: %w", err)
	}

	g := &Game{
		board:          board,
		phase:          PhaseWaiting,
		renderers:      append([]Renderer(nil), renderers...),
		logger:         log.New(io.Discard),
		waitingLimiter: newInputLimiter(cfg.InputInterval),
		activeLimiter:  newInputLimiter(cfg.InputInterval),
		rng:            rand.New(rand.NewSource(cfg.Seed)),
		now:            time.Now,
	}
	g.pick = g.randomKind
	return g, nil
}

// SetLogger replaces the logger. A nil logger discards output.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// AddRenderer registers another renderer after the existing ones.
func (g *Game) AddRenderer(r Renderer) {
	g.renderers = append(g.renderers, r)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Piece returns the active piece. ok is false outside PhaseActive.
func (g *Game) Piece() (p Piece, ok bool) {
	if g.piece == nil {
		return Piece{}, false
	}
	return *g.piece, true
}

// Grid returns a copy of the board.
func (g *Game) Grid() Grid {
	return g.board.Snapshot()
}

// Terminated reports whether a Quit action has been handled.
func (g *Game) Terminated() bool {
	return g.terminated
}

// HandleInput applies one input event. Only presses drive the game; releases
// are ignored. Once the game has terminated every event is ignored.
func (g *Game) HandleInput(action core.Action, pressed bool) Outcome {
	if !pressed || g.terminated {
		return OutcomeIgnored
	}

	switch g.phase {
	case PhaseWaiting:
		return g.handleWaiting(action)
	case PhaseActive:
		return g.handleActive(action)
	case PhaseGameOver:
		return g.handleGameOver(action)
	default:
		return OutcomeIgnored
	}
}

func (g *Game) handleWaiting(action core.Action) Outcome {
	if !g.waitingLimiter.allow(g.now()) {
		return OutcomeDropped
	}

	switch action {
	case core.ActionConfirm:
		g.start()
		g.notify()
		return OutcomeHandled
	case core.ActionQuit:
		return g.quit()
	default:
		return OutcomeIgnored
	}
}

func (g *Game) handleActive(action core.Action) Outcome {
	if !g.activeLimiter.allow(g.now()) {
		return OutcomeDropped
	}

	switch action {
	case core.ActionMoveLeft:
		g.move(-1, 0)
	case core.ActionMoveRight:
		g.move(1, 0)
	case core.ActionSoftDrop:
		if !g.move(0, 1) {
			g.lock()
		}
	case core.ActionHardDrop:
		for g.move(0, 1) {
			// fall until blocked
		}
		g.lock()
	case core.ActionRotateCW:
		g.rotate(true)
	case core.ActionRotateCCW:
		g.rotate(false)
	case core.ActionQuit:
		return g.quit()
	default:
		return OutcomeIgnored
	}

	g.notify()
	return OutcomeHandled
}

func (g *Game) handleGameOver(action core.Action) Outcome {
	switch action {
	case core.ActionAcknowledgeLoss:
		g.setPhase(PhaseWaiting)
		g.notifyState()
		return OutcomeHandled
	case core.ActionQuit:
		return g.quit()
	default:
		return OutcomeIgnored
	}
}

// start clears the board and brings the first piece into play.
func (g *Game) start() {
	g.board.Reset()
	g.setPhase(PhaseActive)
	g.spawn()
}

func (g *Game) quit() Outcome {
	g.terminated = true
	g.logger.Info("quit requested", "phase", g.phase)
	return OutcomeQuit
}

// move lifts the piece off the board, tries the translation and puts the
// piece back at its new or old position.
func (g *Game) move(dx, dy int) bool {
	if g.piece == nil {
		return false
	}
	cells := g.piece.Cells()
	g.board.Clear(cells[:]...)
	moved, ok := g.piece.Translate(dx, dy, g.board)
	g.piece = &moved
	g.board.Place(moved)
	return ok
}

func (g *Game) rotate(clockwise bool) {
	if g.piece == nil {
		return
	}
	cells := g.piece.Cells()
	g.board.Clear(cells[:]...)
	rotated := g.piece.Rotate(clockwise, g.board)
	g.piece = &rotated
	g.board.Place(rotated)
}

// lock commits the active piece, removes the rows it completed and spawns
// the next piece.
func (g *Game) lock() {
	if g.piece == nil {
		return
	}
	locked := *g.piece
	g.piece = nil
	g.board.Place(locked)

	cleared := 0
	for _, y := range locked.Rows() {
		if g.board.IsLineFull(y) {
			g.board.ClearLine(y)
			g.board.CollapseAbove(y)
			cleared++
		}
	}
	g.logger.Debug("piece locked", "piece", locked, "lines", cleared)

	g.spawn()
}

// spawn brings a new random piece into play, or ends the game when the
// spawn position is blocked. A blocked piece is never placed.
func (g *Game) spawn() {
	p := Spawn(g.pick(), g.board.Width())
	if !p.Fits(g.board) {
		g.piece = nil
		g.setPhase(PhaseGameOver)
		g.logger.Info("spawn blocked, game over", "piece", p)
		return
	}
	g.board.Place(p)
	g.piece = &p
	g.logger.Debug("piece spawned", "piece", p)
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	g.logger.Debug("phase change", "from", g.phase, "to", p)
	g.phase = p
}

// notify publishes the board to every renderer and, if the input that was
// just handled ended the game, the loss notice. Only inputs handled in the
// waiting or active phase can end the game, so Lost fires once per
// transition.
func (g *Game) notify() {
	g.notifyState()
	if g.phase == PhaseGameOver {
		for _, r := range g.renderers {
			r.Lost()
		}
	}
}

func (g *Game) notifyState() {
	if len(g.renderers) == 0 {
		return
	}
	grid := g.board.Snapshot()
	for _, r := range g.renderers {
		r.StateChanged(grid)
	}
}

func (g *Game) randomKind() Kind {
	return Kinds[g.rng.Intn(kindCount)]
}
