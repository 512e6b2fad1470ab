package render

import (
	"image/color"

	"github.com/wvoliveira/pedals/internal/geom"
)

const bytesPerPixel = 4

// Canvas is a linear RGBA8 buffer, row-major, origin at the top-left.
type Canvas struct {
	Pix    []byte
	Width  int
	Height int
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Pix:    make([]byte, width*height*bytesPerPixel),
		Width:  width,
		Height: height,
	}
}

// Clear zeroes every byte.
func (c *Canvas) Clear() {
	clear(c.Pix)
}

// FillRect paints r with col. Rows and columns off the canvas are skipped.
func (c *Canvas) FillRect(r geom.Rect, col color.RGBA) {
	px := [bytesPerPixel]byte{col.R, col.G, col.B, col.A}

	for y := r.Y; y < r.Y+r.Height; y++ {
		if y < 0 || y >= c.Height {
			continue
		}
		for x := r.X; x < r.X+r.Width; x++ {
			if x < 0 || x >= c.Width {
				continue
			}
			i := (x + y*c.Width) * bytesPerPixel
			copy(c.Pix[i:i+bytesPerPixel], px[:])
		}
	}
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	i := (x + y*c.Width) * bytesPerPixel
	return color.RGBA{c.Pix[i], c.Pix[i+1], c.Pix[i+2], c.Pix[i+3]}
}
