package world

// Input é o snapshot das teclas seguradas neste frame.
type Input struct {
	Left  bool
	Right bool
}

// Apply sets the human paddle velocity. Left wins when both keys are held.
func (w *World) Apply(in Input) {
	switch {
	case in.Left:
		w.P1.Velocity = -w.playerSpeed
	case in.Right:
		w.P1.Velocity = w.playerSpeed
	default:
		w.P1.Velocity = 0
	}
}
