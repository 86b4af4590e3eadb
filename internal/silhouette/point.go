package silhouette

import "gonum.org/v1/gonum/spatial/r3"

// Point2 is a position on the obstruction plane in centimeters:
// X is the distance from the side-wall, Y the height above the floor.
type Point2 struct {
	X, Y Real
}

// At lifts the point into 3D at the given depth from the light.
func (p Point2) At(depth Real) r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: depth}
}
