package world

import "math"

const fullTurn = 2 * math.Pi

type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector    { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector    { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }
func (v Vector) Half() Vector           { return v.Scale(0.5) }
func (v Vector) Angle() float64         { return math.Atan2(v.Y, v.X) }

// NormalizeAngle maps an angle in radians into [0, 2π) by adding or
// subtracting a single full turn. Inputs more than one turn outside the
// range come back still out of range.
func NormalizeAngle(angle float64) float64 {
	if angle < 0 {
		return angle + fullTurn
	}
	if angle >= fullTurn {
		return angle - fullTurn
	}
	return angle
}

// Heading is the unit step along a travel angle: x follows sin, y follows -cos.
func Heading(angle float64) Vector {
	return Vector{X: math.Sin(angle), Y: -math.Cos(angle)}
}
