package tetris

// Renderer receives the game's output. Calls are synchronous and
// fire-and-forget: implementations must return promptly and must not call
// back into the Game.
type Renderer interface {
	// StateChanged is called with a copy of the board after every input
	// that changed the game.
	StateChanged(grid Grid)

	// Lost is called exactly once each time the game enters PhaseGameOver.
	// The game then waits for core.ActionAcknowledgeLoss.
	Lost()
}

// RendererFuncs adapts plain functions to the Renderer interface. Nil
// fields are skipped.
type RendererFuncs struct {
	OnStateChanged func(grid Grid)
	OnLost         func()
}

// StateChanged implements Renderer.
func (f RendererFuncs) StateChanged(grid Grid) {
	if f.OnStateChanged != nil {
		f.OnStateChanged(grid)
	}
}

// Lost implements Renderer.
func (f RendererFuncs) Lost() {
	if f.OnLost != nil {
		f.OnLost()
	}
}
