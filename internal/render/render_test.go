package render

import (
	"image/color"
	"testing"

	"github.com/wvoliveira/pedals/configs"
	"github.com/wvoliveira/pedals/internal/geom"
	"github.com/wvoliveira/pedals/internal/world"
)

var cleared = color.RGBA{}

func count(c *Canvas, col color.RGBA) int {
	n := 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.At(x, y) == col {
				n++
			}
		}
	}
	return n
}

func inside(r geom.Rect, x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(320, 240)
	if len(c.Pix) != 320*240*4 {
		t.Fatalf("len(Pix) = %d", len(c.Pix))
	}
	if count(c, cleared) != 320*240 {
		t.Errorf("new canvas is not cleared")
	}
}

func TestFillRect(t *testing.T) {
	c := NewCanvas(320, 240)
	red := color.RGBA{0xff, 0, 0, 0xff}
	r := geom.Rect{X: 10, Y: 20, Width: 3, Height: 2}

	c.FillRect(r, red)

	if got := count(c, red); got != 6 {
		t.Errorf("painted %d pixels, want 6", got)
	}
	// Offset (x + y*W)*4.
	i := (10 + 20*320) * 4
	if c.Pix[i] != 0xff || c.Pix[i+1] != 0 || c.Pix[i+2] != 0 || c.Pix[i+3] != 0xff {
		t.Errorf("pixel bytes at (10,20) = %v", c.Pix[i:i+4])
	}
	if c.At(13, 20) != cleared || c.At(10, 22) != cleared {
		t.Errorf("painted past the rect")
	}
}

func TestFillRectClips(t *testing.T) {
	tests := []struct {
		name   string
		r      geom.Rect
		expect int
	}{
		{"off left", geom.Rect{X: -3, Y: 0, Width: 5, Height: 5}, 10},
		{"off right", geom.Rect{X: 318, Y: 100, Width: 5, Height: 5}, 10},
		{"off top", geom.Rect{X: 100, Y: -4, Width: 5, Height: 5}, 5},
		{"off bottom", geom.Rect{X: 100, Y: 238, Width: 5, Height: 5}, 10},
		{"corner", geom.Rect{X: -2, Y: -2, Width: 5, Height: 5}, 9},
		{"fully outside", geom.Rect{X: 100, Y: -20, Width: 5, Height: 5}, 0},
		{"bigger than canvas", geom.Rect{X: -10, Y: -10, Width: 400, Height: 300}, 320 * 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(320, 240)
			white := color.RGBA{0xff, 0xff, 0xff, 0xff}
			c.FillRect(tt.r, white)
			if got := count(c, white); got != tt.expect {
				t.Errorf("painted %d pixels, want %d", got, tt.expect)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	cfg := configs.New()
	w := world.New(cfg)
	c := NewCanvas(w.Width(), w.Height())

	// Sujeira do frame anterior precisa sumir.
	c.FillRect(geom.Rect{X: 0, Y: 0, Width: 50, Height: 50}, color.RGBA{1, 2, 3, 4})

	Draw(c, w, cfg.Palette)

	p1 := w.P1.Rect
	if got := count(c, cfg.Player1); got != p1.Width*p1.Height {
		t.Errorf("P1 pixels = %d, want %d", got, p1.Width*p1.Height)
	}
	p2 := w.P2.Rect
	if got := count(c, cfg.Player2); got != p2.Width*p2.Height {
		t.Errorf("P2 pixels = %d, want %d", got, p2.Width*p2.Height)
	}
	ball := w.Ball.Rect
	if got := count(c, cfg.Ball); got != ball.Width*ball.Height {
		t.Errorf("ball pixels = %d, want %d", got, ball.Width*ball.Height)
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if inside(p1, x, y) || inside(p2, x, y) || inside(ball, x, y) {
				continue
			}
			if c.At(x, y) != cleared {
				t.Fatalf("pixel (%d,%d) = %v, want cleared", x, y, c.At(x, y))
			}
		}
	}
}

func TestDrawBallOnTop(t *testing.T) {
	cfg := configs.New()
	w := world.New(cfg)
	c := NewCanvas(w.Width(), w.Height())
	w.Ball.Rect = geom.Rect{X: w.P1.Rect.X, Y: w.P1.Rect.Y, Width: 5, Height: 5}

	Draw(c, w, cfg.Palette)

	if got := c.At(w.P1.Rect.X, w.P1.Rect.Y); got != cfg.Ball {
		t.Errorf("overlap pixel = %v, want ball color", got)
	}
}

func TestDrawOffscreenBall(t *testing.T) {
	cfg := configs.New()
	w := world.New(cfg)
	c := NewCanvas(w.Width(), w.Height())
	w.Ball.Rect = geom.Rect{X: 100, Y: -50, Width: 5, Height: 5}

	Draw(c, w, cfg.Palette)

	if got := count(c, cfg.Ball); got != 0 {
		t.Errorf("ball pixels = %d, want 0", got)
	}
}
