package silhouette

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Light is a point light. Depth is measured along the side-wall starting at
// the light, so the light itself sits at depth 0.
type Light struct {
	DepthFromWall Real `json:"depthFromWall" yaml:"depthFromWall" toml:"depthFromWall"`
	Height        Real `json:"height" yaml:"height" toml:"height"`
}

// Position returns the light in scene coordinates (x from wall, y up, z depth).
func (l Light) Position() r3.Vec {
	return r3.Vec{X: l.DepthFromWall, Y: l.Height}
}

// Toward returns the vector from the light to p.
func (l Light) Toward(p r3.Vec) r3.Vec {
	return r3.Sub(p, l.Position())
}

// angleDeg returns the opening angle between a and b in degrees, the same
// angle as acos(a·b / |a||b|) but taken through atan2 so parallel vectors
// come out as exactly 0. Zero-length vectors give 0.
func angleDeg(a, b r3.Vec) Real {
	if r3.Norm2(a) == 0 || r3.Norm2(b) == 0 {
		return 0
	}
	return math.Atan2(r3.Norm(r3.Cross(a, b)), r3.Dot(a, b)) * 180 / math.Pi
}
