package silhouette

import "gonum.org/v1/gonum/spatial/r3"

// Analytics summarizes where the stencil sits relative to the light and how
// the light must be aimed to cover it.
type Analytics struct {
	PixelCount          int64
	Centroid            Point2 // cm on the obstruction plane
	ViewingAngleDeg     Real   // full cone spanned by the bounding box
	ViewingHalfAngleDeg Real
	PitchDeg            Real // negative when the centroid is below the light
	YawDeg              Real
}

// Analyze turns sweep sums into centroid and aiming angles. An empty sweep
// yields the zero value.
func Analyze(sums Sums, scene Scene) Analytics {
	if sums.Count == 0 {
		return Analytics{}
	}
	ob, light := scene.Obstruction, scene.Light
	dx, dy := scene.CellSize()
	n := Real(sums.Count)
	resH := Real(ob.ResH)

	// row 0 is the top of the plane
	toPlane := func(x, y Real) Point2 {
		return Point2{X: dx * x, Y: dy * (resH - y)}
	}
	c := toPlane(Real(sums.SumX)/n, Real(sums.SumY)/n)
	a := toPlane(Real(sums.MinX), Real(sums.MaxY))
	b := toPlane(Real(sums.MaxX), Real(sums.MinY))

	depth := ob.DepthFromLight
	view := angleDeg(light.Toward(a.At(depth)), light.Toward(b.At(depth)))

	toCentroid := light.Toward(c.At(depth))
	level := r3.Vec{X: toCentroid.X, Z: toCentroid.Z}
	pitch := angleDeg(toCentroid, level)
	if c.Y < light.Height {
		pitch = -pitch
	}
	yaw := angleDeg(level, r3.Vec{Z: depth})

	res := Analytics{
		PixelCount:          sums.Count,
		Centroid:            c,
		ViewingAngleDeg:     view,
		ViewingHalfAngleDeg: view / 2,
		PitchDeg:            pitch,
		YawDeg:              yaw,
	}
	DebugLog("Analytics: %+v", res)
	return res
}
