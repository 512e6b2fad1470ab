package world

import (
	"math"

	"github.com/wvoliveira/pedals/configs"
	"github.com/wvoliveira/pedals/internal/geom"
)

type Player struct {
	Rect     geom.Rect
	Velocity int
}

type Ball struct {
	Rect     geom.Rect
	Velocity geom.Vector
}

// Estado do mundo. P1 é a raquete de baixo (teclado), P2 a de cima (máquina).
type World struct {
	P1   Player
	Ball Ball
	P2   Player

	width       int
	height      int
	playerSpeed int
	trackSpeed  int
}

// New builds the starting layout: both paddles and the ball at the horizontal
// center, P2 already moving right.
func New(cfg configs.Config) *World {
	return &World{
		P1: Player{
			Rect: geom.Rect{
				X:      cfg.ScreenWidth / 2,
				Y:      cfg.ScreenHeight - cfg.PaddleHeight - 1,
				Width:  cfg.PaddleWidth,
				Height: cfg.PaddleHeight,
			},
			Velocity: 0,
		},
		Ball: Ball{
			Rect: geom.Rect{
				X:      cfg.ScreenWidth / 2,
				Y:      cfg.ScreenHeight / 2,
				Width:  cfg.BallSize,
				Height: cfg.BallSize,
			},
			Velocity: geom.Vector{X: cfg.BallSpeedX, Y: cfg.BallSpeedY},
		},
		P2: Player{
			Rect: geom.Rect{
				X:      cfg.ScreenWidth / 2,
				Y:      1,
				Width:  cfg.PaddleWidth,
				Height: cfg.PaddleHeight,
			},
			Velocity: cfg.AISpeed,
		},

		width:       cfg.ScreenWidth,
		height:      cfg.ScreenHeight,
		playerSpeed: cfg.PlayerSpeed,
		trackSpeed:  cfg.TrackSpeed,
	}
}

func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

// Step is one frame: apply the input snapshot, then advance the simulation.
func (w *World) Step(in Input) {
	w.Apply(in)
	w.Update()
}

// Update advances the world by one tick.
func (w *World) Update() {
	// A máquina só muda de direção, nunca de velocidade além de trackSpeed.
	if w.Ball.Velocity.X > 0 && w.P2.Velocity < 0 {
		w.P2.Velocity = w.trackSpeed
	} else if w.Ball.Velocity.X < 0 && w.P2.Velocity > 0 {
		w.P2.Velocity = -w.trackSpeed
	}

	w.updatePlayer(&w.P2)
	w.updatePlayer(&w.P1)

	w.Ball.Rect.X += int(math.Round(float64(w.Ball.Velocity.X)))
	w.Ball.Rect.Y += int(math.Round(float64(w.Ball.Velocity.Y)))

	w.Ball.Velocity = w.bounce()
}

// updatePlayer rejects the move when it would reach a wall; the paddle keeps
// its velocity and retries next tick.
func (w *World) updatePlayer(p *Player) {
	newX := p.Rect.X + p.Velocity
	if newX > 0 && newX+p.Rect.Width < w.width {
		p.Rect.X = newX
	}
}

// bounce picks the first matching collision. Teto e chão não são checados.
func (w *World) bounce() geom.Vector {
	ball := w.Ball
	switch {
	case ball.Rect.Overlaps(w.P2.Rect):
		return ball.Velocity.Reflection(geom.Down)
	case ball.Rect.Overlaps(w.P1.Rect):
		return ball.Velocity.Reflection(geom.Up)
	case ball.Rect.X <= 0:
		return ball.Velocity.Reflection(geom.Right)
	case ball.Rect.X+ball.Rect.Width >= w.width:
		return ball.Velocity.Reflection(geom.Left)
	}
	return ball.Velocity
}
