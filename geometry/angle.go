package geometry

import (
	"fmt"
	"math"
)

// RotateToTop re-bases an angle from Theta so that 0 points straight up and
// angles grow clockwise. Input outside [0, 2π] panics.
func RotateToTop(theta float64) float64 {
	switch {
	case theta >= 0 && theta <= 1.5*math.Pi:
		return theta + 0.5*math.Pi
	case theta >= 1.5*math.Pi && theta <= 2*math.Pi:
		return theta - 1.5*math.Pi
	}
	panic(fmt.Sprintf("geometry: angle %v outside [0, 2π]", theta))
}

// RotateFromTop is the inverse of RotateToTop.
func RotateFromTop(angle float64) float64 {
	theta := angle - 0.5*math.Pi
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}
