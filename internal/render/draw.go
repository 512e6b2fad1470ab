package render

import (
	"github.com/wvoliveira/pedals/configs"
	"github.com/wvoliveira/pedals/internal/world"
)

// Draw redraws the whole frame: clear, then P1, P2 and the ball on top.
func Draw(c *Canvas, w *world.World, p configs.Palette) {
	c.Clear()
	c.FillRect(w.P1.Rect, p.Player1)
	c.FillRect(w.P2.Rect, p.Player2)
	c.FillRect(w.Ball.Rect, p.Ball)
}
