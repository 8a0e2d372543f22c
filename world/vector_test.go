package world

import (
	"math"
	"testing"
)

func TestNormalizeAngleRange(t *testing.T) {
	for i := -628; i < 1257; i++ {
		in := float64(i) * 0.01
		got := NormalizeAngle(in)
		if got < 0 || got >= fullTurn {
			t.Fatalf("NormalizeAngle(%.2f) = %v, outside [0, 2π)", in, got)
		}
		if !approxEqual(math.Sin(got), math.Sin(in)) || !approxEqual(math.Cos(got), math.Cos(in)) {
			t.Fatalf("NormalizeAngle(%.2f) = %v changed the direction", in, got)
		}
	}
}

func TestNormalizeAngleSingleTurn(t *testing.T) {
	if got := NormalizeAngle(fullTurn); got != 0 {
		t.Fatalf("NormalizeAngle(2π) = %v, want 0", got)
	}
	if got := NormalizeAngle(-5 * math.Pi); got >= 0 {
		t.Fatalf("NormalizeAngle(-5π) = %v, only one turn should be added", got)
	}
}

func TestHeading(t *testing.T) {
	cases := []struct {
		angle float64
		want  Vector
	}{
		{0, Vector{X: 0, Y: -1}},
		{math.Pi / 2, Vector{X: 1, Y: 0}},
		{math.Pi, Vector{X: 0, Y: 1}},
		{3 * math.Pi / 2, Vector{X: -1, Y: 0}},
	}
	for _, c := range cases {
		got := Heading(c.angle)
		if !approxVector(got, c.want) {
			t.Fatalf("Heading(%v) = %+v, want %+v", c.angle, got, c.want)
		}
	}
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	return math.Abs(a-b) <= eps
}

func approxVector(a, b Vector) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y)
}
