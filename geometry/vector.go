package geometry

import (
	"math"
)

type Vector struct {
	X float64
	Y float64
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Theta returns the angle of the vector from the positive X axis in [0, 2π).
// Screen Y grows downward, so the angle runs clockwise on screen.
func (v Vector) Theta() float64 {
	theta := math.Atan2(v.Y, v.X)
	if theta >= 0 {
		return theta
	}
	return theta + 2*math.Pi
}

// FromPolar builds the vector with the given length pointing along angle (as returned by Theta).
func FromPolar(length, angle float64) Vector {
	return Vector{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}
