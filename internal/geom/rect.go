package geom

// Rect em pixels, origem no canto superior esquerdo.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Overlaps reports whether the closed boxes intersect. Touching edges count.
func (r Rect) Overlaps(other Rect) bool {
	horizontal := r.X <= other.X+other.Width && r.X+r.Width >= other.X
	vertical := r.Y <= other.Y+other.Height && r.Y+r.Height >= other.Y
	return horizontal && vertical
}
