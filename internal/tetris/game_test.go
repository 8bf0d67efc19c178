package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// recorder is a Renderer that remembers what it was told.
type recorder struct {
	events []string
	states int
	losses int
	last   Grid
}

func (r *recorder) StateChanged(grid Grid) {
	r.states++
	r.last = grid
	r.events = append(r.events, "state")
}

func (r *recorder) Lost() {
	r.losses++
	r.events = append(r.events, "lost")
}

type harness struct {
	t     *testing.T
	game  *Game
	clock *fakeClock
	rec   *recorder
}

// newTestGame builds a default-sized game whose pieces cycle through kinds.
func newTestGame(t *testing.T, kinds ...Kind) *harness {
	t.Helper()
	require.NotEmpty(t, kinds)

	rec := &recorder{}
	g, err := New(DefaultConfig(), rec)
	require.NoError(t, err)

	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	g.now = clock.now

	i := 0
	g.pick = func() Kind {
		k := kinds[i%len(kinds)]
		i++
		return k
	}

	return &harness{t: t, game: g, clock: clock, rec: rec}
}

// press delivers a key press well clear of the rate limit.
func (h *harness) press(a core.Action) Outcome {
	h.clock.advance(time.Second)
	return h.game.HandleInput(a, true)
}

func (h *harness) start() {
	h.t.Helper()
	require.Equal(h.t, OutcomeHandled, h.press(core.ActionConfirm))
	require.Equal(h.t, PhaseActive, h.game.Phase())
}

func (h *harness) piece() Piece {
	h.t.Helper()
	p, ok := h.game.Piece()
	require.True(h.t, ok, "expected an active piece")
	return p
}

func TestWaitingOnlyStartsOnConfirm(t *testing.T) {
	h := newTestGame(t, KindT)
	assert.Equal(t, PhaseWaiting, h.game.Phase())

	for _, a := range []core.Action{
		core.ActionMoveLeft, core.ActionMoveRight, core.ActionSoftDrop,
		core.ActionHardDrop, core.ActionRotateCW, core.ActionAcknowledgeLoss,
	} {
		assert.Equal(t, OutcomeIgnored, h.press(a), a.String())
	}
	assert.Equal(t, PhaseWaiting, h.game.Phase())
	assert.Zero(t, h.rec.states)
	_, ok := h.game.Piece()
	assert.False(t, ok)

	h.start()
	p := h.piece()
	assert.Equal(t, KindT, p.Kind)
	assert.Equal(t, core.Pt(4, 0), p.Anchor)
	assert.Equal(t, 1, h.rec.states)
	assert.Equal(t, 4, h.rec.last.OccupiedCount())
}

func TestConfirmIgnoredWhileActive(t *testing.T) {
	h := newTestGame(t, KindO)
	h.start()
	assert.Equal(t, OutcomeIgnored, h.press(core.ActionConfirm))
	assert.Equal(t, OutcomeIgnored, h.press(core.ActionAcknowledgeLoss))
	assert.Equal(t, 1, h.rec.states)
}

func TestHardDropVerticalI(t *testing.T) {
	h := newTestGame(t, KindI)
	h.start()

	require.Equal(t, OutcomeHandled, h.press(core.ActionHardDrop))

	grid := h.game.Grid()
	for y := 14; y < 18; y++ {
		assert.Equal(t, Filled(KindI), grid.At(4, y), "row %d", y)
	}
	assert.False(t, h.game.board.IsLineFull(17))
	// Locked piece plus the next spawn.
	assert.Equal(t, 8, grid.OccupiedCount())
	assert.Equal(t, core.Pt(4, 0), h.piece().Anchor)
	assert.Equal(t, PhaseActive, h.game.Phase())
}

func TestSoftDropLocksOnlyWhenBlocked(t *testing.T) {
	h := newTestGame(t, KindO, KindT)
	h.start()

	// O at rows 0-1 needs 16 steps to reach the floor.
	for i := 0; i < 16; i++ {
		require.Equal(t, OutcomeHandled, h.press(core.ActionSoftDrop))
		assert.Equal(t, KindO, h.piece().Kind)
	}
	assert.Equal(t, core.Pt(4, 16), h.piece().Anchor)

	require.Equal(t, OutcomeHandled, h.press(core.ActionSoftDrop))
	assert.Equal(t, KindT, h.piece().Kind, "blocked soft drop locks and spawns")
	assert.Equal(t, Filled(KindO), h.game.Grid().At(4, 17))
	assert.Equal(t, 8, h.game.Grid().OccupiedCount())
}

func TestRejectedMoveStillPublishesState(t *testing.T) {
	h := newTestGame(t, KindI)
	h.start()

	for i := 0; i < 4; i++ {
		h.press(core.ActionMoveLeft)
	}
	require.Equal(t, 0, h.piece().Anchor.X)
	states := h.rec.states

	assert.Equal(t, OutcomeHandled, h.press(core.ActionMoveLeft))
	assert.Equal(t, 0, h.piece().Anchor.X)
	assert.Equal(t, states+1, h.rec.states)
	assert.Equal(t, 4, h.rec.last.OccupiedCount())
}

func TestLineClearWithVerticalI(t *testing.T) {
	h := newTestGame(t, KindI)
	h.start()
	fillRow(h.game.board, 17, KindZ, 3)

	h.press(core.ActionMoveLeft)
	require.Equal(t, core.Pt(3, 0), h.piece().Anchor)
	h.press(core.ActionHardDrop)

	grid := h.game.Grid()
	for x := 0; x < DefaultWidth; x++ {
		if x == 3 {
			continue
		}
		assert.False(t, grid.At(x, 17).Occupied(), "column %d of the bottom row", x)
	}
	for y := 15; y < 18; y++ {
		assert.Equal(t, Filled(KindI), grid.At(3, y), "row %d", y)
	}
	assert.False(t, grid.At(3, 14).Occupied())
	// Three surviving I cells plus the next spawn.
	assert.Equal(t, 7, grid.OccupiedCount())
}

func TestLineClearWithOAndCollapse(t *testing.T) {
	h := newTestGame(t, KindO)
	h.start()
	fillRow(h.game.board, 17, KindL, 3, 4)
	h.game.board.set(core.Pt(0, 16), Filled(KindT))

	h.press(core.ActionMoveLeft)
	h.press(core.ActionHardDrop)

	grid := h.game.Grid()
	assert.Equal(t, Filled(KindT), grid.At(0, 17), "block above the cleared row moves down")
	assert.Equal(t, Filled(KindO), grid.At(3, 17))
	assert.Equal(t, Filled(KindO), grid.At(4, 17))
	assert.False(t, grid.At(0, 16).Occupied())
	assert.False(t, grid.At(3, 16).Occupied())
	for _, x := range []int{1, 2, 5, 6, 7, 8, 9} {
		assert.False(t, grid.At(x, 17).Occupied(), "column %d", x)
	}
	assert.Equal(t, 7, grid.OccupiedCount())
}

func TestMultipleLinesClearInOneLock(t *testing.T) {
	h := newTestGame(t, KindI)
	h.start()
	for y := 14; y < 18; y++ {
		fillRow(h.game.board, y, KindJ, 4)
	}
	h.game.board.set(core.Pt(0, 13), Filled(KindS))

	h.press(core.ActionHardDrop)

	grid := h.game.Grid()
	assert.Equal(t, Filled(KindS), grid.At(0, 17))
	// The marker plus the new spawn.
	assert.Equal(t, 5, grid.OccupiedCount())
}

func TestRotateThroughController(t *testing.T) {
	h := newTestGame(t, KindI)
	h.start()

	require.Equal(t, OutcomeHandled, h.press(core.ActionRotateCW))
	p := h.piece()
	assert.Equal(t, Rotation(1), p.Rotation)
	assert.Equal(t, [4]core.Point{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0}}, p.Cells())

	grid := h.rec.last
	assert.Equal(t, 4, grid.OccupiedCount(), "no stale cells from the old orientation")
	for y := 1; y < 4; y++ {
		assert.False(t, grid.At(4, y).Occupied())
	}

	require.Equal(t, OutcomeHandled, h.press(core.ActionRotateCCW))
	assert.Equal(t, [4]core.Point{{X: 4, Y: 0}, {X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}}, h.piece().Cells())
}

func TestForcedLossAndRestart(t *testing.T) {
	h := newTestGame(t, KindI)
	h.start()
	h.game.board.set(core.Pt(4, 5), Filled(KindZ))

	// The I stops on the block at rows 1-4, so the next I cannot spawn.
	require.Equal(t, OutcomeHandled, h.press(core.ActionHardDrop))

	assert.Equal(t, PhaseGameOver, h.game.Phase())
	assert.Equal(t, 1, h.rec.losses)
	_, ok := h.game.Piece()
	assert.False(t, ok)
	assert.Equal(t, 5, h.game.Grid().OccupiedCount(), "blocked spawn is not placed")
	assert.Equal(t, []string{"state", "state", "lost"}, h.rec.events)

	// Nothing but acknowledge or quit has an effect now.
	for _, a := range []core.Action{core.ActionMoveLeft, core.ActionHardDrop, core.ActionConfirm} {
		assert.Equal(t, OutcomeIgnored, h.press(a))
	}
	assert.Equal(t, PhaseGameOver, h.game.Phase())
	assert.Equal(t, 1, h.rec.losses)

	require.Equal(t, OutcomeHandled, h.press(core.ActionAcknowledgeLoss))
	assert.Equal(t, PhaseWaiting, h.game.Phase())
	assert.Equal(t, 1, h.rec.losses)
	assert.Equal(t, 5, h.rec.last.OccupiedCount(), "the final board stays visible while waiting")

	h.start()
	assert.Equal(t, core.Pt(4, 0), h.piece().Anchor)
	assert.Equal(t, 4, h.game.Grid().OccupiedCount(), "restart clears the board")
	assert.Equal(t, 1, h.rec.losses)
}

func TestStackingOsEndsTheGame(t *testing.T) {
	h := newTestGame(t, KindO)
	h.start()

	for i := 0; i < 8; i++ {
		require.Equal(t, OutcomeHandled, h.press(core.ActionHardDrop))
		require.Equal(t, PhaseActive, h.game.Phase(), "drop %d", i+1)
	}
	assert.Zero(t, h.rec.losses)

	// The ninth O locks in the top two rows and the tenth has nowhere to go.
	require.Equal(t, OutcomeHandled, h.press(core.ActionHardDrop))
	assert.Equal(t, PhaseGameOver, h.game.Phase())
	assert.Equal(t, 1, h.rec.losses)
	assert.Equal(t, 36, h.game.Grid().OccupiedCount())

	require.Equal(t, OutcomeHandled, h.press(core.ActionAcknowledgeLoss))
	h.start()
	assert.Equal(t, 4, h.game.Grid().OccupiedCount())

	h.press(core.ActionHardDrop)
	assert.Equal(t, PhaseActive, h.game.Phase())
	assert.Equal(t, 1, h.rec.losses)
}

func TestRateLimitDropsFastInputs(t *testing.T) {
	h := newTestGame(t, KindT)
	h.start()

	require.Equal(t, OutcomeHandled, h.press(core.ActionMoveLeft))
	h.clock.advance(10 * time.Millisecond)
	assert.Equal(t, OutcomeDropped, h.game.HandleInput(core.ActionMoveLeft, true))
	assert.Equal(t, core.Pt(3, 0), h.piece().Anchor, "dropped input has no effect")
}

func TestRateLimitWindowStartsAtLastAcceptedInput(t *testing.T) {
	h := newTestGame(t, KindT)
	h.start()

	require.Equal(t, OutcomeHandled, h.press(core.ActionMoveRight))
	states := h.rec.states

	h.clock.advance(30 * time.Millisecond)
	assert.Equal(t, OutcomeDropped, h.game.HandleInput(core.ActionMoveRight, true))
	assert.Equal(t, states, h.rec.states, "dropped input publishes nothing")

	// 55ms after the accepted input; the dropped one did not restart the window.
	h.clock.advance(25 * time.Millisecond)
	assert.Equal(t, OutcomeHandled, h.game.HandleInput(core.ActionMoveRight, true))
	assert.Equal(t, core.Pt(6, 0), h.piece().Anchor)
}

func TestRateLimitPerPhase(t *testing.T) {
	h := newTestGame(t, KindT)
	h.start()

	// Confirm was consumed by the waiting limiter; the active one is fresh.
	assert.Equal(t, OutcomeHandled, h.game.HandleInput(core.ActionMoveLeft, true))
	h.clock.advance(time.Millisecond)
	assert.Equal(t, OutcomeDropped, h.game.HandleInput(core.ActionMoveLeft, true))
}

func TestGameOverIsNotThrottled(t *testing.T) {
	h := newTestGame(t, KindO)
	h.start()
	for h.game.Phase() == PhaseActive {
		h.press(core.ActionHardDrop)
	}

	assert.Equal(t, OutcomeIgnored, h.game.HandleInput(core.ActionMoveLeft, true))
	assert.Equal(t, OutcomeHandled, h.game.HandleInput(core.ActionAcknowledgeLoss, true))
	assert.Equal(t, PhaseWaiting, h.game.Phase())
}

func TestReleaseEventsAreIgnored(t *testing.T) {
	h := newTestGame(t, KindT)

	h.clock.advance(time.Second)
	assert.Equal(t, OutcomeIgnored, h.game.HandleInput(core.ActionConfirm, false))
	assert.Equal(t, PhaseWaiting, h.game.Phase())

	// The release did not consume the limiter.
	assert.Equal(t, OutcomeHandled, h.game.HandleInput(core.ActionConfirm, true))
	assert.Equal(t, OutcomeIgnored, h.game.HandleInput(core.ActionMoveLeft, false))
	assert.Equal(t, OutcomeHandled, h.game.HandleInput(core.ActionMoveLeft, true))
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *harness)
	}{
		{"waiting", func(h *harness) {}},
		{"active", func(h *harness) { h.start() }},
		{"game over", func(h *harness) {
			h.start()
			h.game.board.set(core.Pt(4, 5), Filled(KindZ))
			h.press(core.ActionHardDrop)
			require.Equal(h.t, PhaseGameOver, h.game.Phase())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestGame(t, KindI)
			tt.setup(h)
			phase := h.game.Phase()
			states := h.rec.states

			assert.Equal(t, OutcomeQuit, h.press(core.ActionQuit))
			assert.True(t, h.game.Terminated())
			assert.Equal(t, phase, h.game.Phase())
			assert.Equal(t, states, h.rec.states)

			for _, a := range []core.Action{core.ActionConfirm, core.ActionHardDrop, core.ActionAcknowledgeLoss, core.ActionQuit} {
				assert.Equal(t, OutcomeIgnored, h.press(a))
			}
		})
	}
}

func TestRenderersNotifiedInOrder(t *testing.T) {
	var log []string
	named := func(name string) Renderer {
		return RendererFuncs{
			OnStateChanged: func(Grid) { log = append(log, name+":state") },
			OnLost:         func() { log = append(log, name+":lost") },
		}
	}

	h := newTestGame(t, KindI)
	h.game.AddRenderer(named("a"))
	h.game.AddRenderer(named("b"))
	h.game.AddRenderer(RendererFuncs{}) // nil callbacks are skipped

	h.start()
	assert.Equal(t, []string{"a:state", "b:state"}, log)

	log = nil
	h.game.board.set(core.Pt(4, 5), Filled(KindZ))
	h.press(core.ActionHardDrop)
	assert.Equal(t, []string{"a:state", "b:state", "a:lost", "b:lost"}, log)
	assert.Equal(t, []string{"state", "state", "lost"}, h.rec.events, "constructor renderer comes first")
}

func TestSnapshotCopiesPiece(t *testing.T) {
	h := newTestGame(t, KindL)

	s := h.game.Snapshot()
	assert.Equal(t, PhaseWaiting, s.Phase)
	assert.Nil(t, s.Piece)

	h.start()
	s = h.game.Snapshot()
	require.NotNil(t, s.Piece)
	assert.Equal(t, PhaseActive, s.Phase)
	assert.Equal(t, 4, s.Grid.OccupiedCount())

	s.Piece.Anchor = core.Pt(0, 10)
	assert.Equal(t, core.Pt(4, 0), h.piece().Anchor)
}

func TestNewGameConfig(t *testing.T) {
	_, err := New(Config{Width: 2, Height: 18})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	g, err := New(Config{Width: 12, Height: 20, InputInterval: -1, Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, 12, g.Grid().Width())
	assert.Equal(t, 20, g.Grid().Height())

	// With throttling disabled, back-to-back inputs are all handled.
	assert.Equal(t, OutcomeHandled, g.HandleInput(core.ActionConfirm, true))
	assert.Equal(t, OutcomeHandled, g.HandleInput(core.ActionMoveLeft, true))
	assert.Equal(t, OutcomeHandled, g.HandleInput(core.ActionMoveLeft, true))
	g.SetLogger(nil)
	assert.Equal(t, OutcomeHandled, g.HandleInput(core.ActionMoveLeft, true))
}

func TestSeededGamesDealTheSameKinds(t *testing.T) {
	deal := func() []Kind {
		g, err := New(Config{Seed: 99, InputInterval: -1})
		require.NoError(t, err)
		var kinds []Kind
		g.HandleInput(core.ActionConfirm, true)
		for i := 0; i < 5 && g.Phase() == PhaseActive; i++ {
			p, _ := g.Piece()
			kinds = append(kinds, p.Kind)
			g.HandleInput(core.ActionHardDrop, true)
		}
		return kinds
	}
	assert.Equal(t, deal(), deal())
}
