package geom

// Vector é a velocidade da bola.
type Vector struct {
	X float32
	Y float32
}

func (v Vector) Dot(other Vector) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Reflection returns v bounced off a surface with the given unit normal:
// v - 2(v·n)n.
func (v Vector) Reflection(normal Vector) Vector {
	angle := v.Dot(normal)
	return Vector{
		X: v.X - (2*angle)*normal.X,
		Y: v.Y - (2*angle)*normal.Y,
	}
}

// Normais usadas nas colisões.
var (
	Down  = Vector{X: 0, Y: 1}
	Up    = Vector{X: 0, Y: -1}
	Right = Vector{X: 1, Y: 0}
	Left  = Vector{X: -1, Y: 0}
)
