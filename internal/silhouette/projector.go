package silhouette

import (
	"image"
	"math"
)

// Projector decides single obstruction cells. It is read-only after
// construction and safe to share between sweep workers.
type Projector struct {
	scene Scene
	img   *image.NRGBA // nil means nothing is ink
	valid bool

	cellW, cellH Real
}

// Ray holds every intermediate value of one cell test.
type Ray struct {
	ObX, ObY       Real
	SlopeX, SlopeY Real
	WallZ, WallY   Real
	PictureX       Real
	PictureY       Real
	PixelX, PixelY int
	Category       Category
	Clamped        bool // pixel index had to be pulled back into the image
	HitsSilhouette bool // PictureX/PictureY passed the bounds check
}

// NewProjector prepares a projector for scene sampling img.
func NewProjector(scene Scene, img *image.NRGBA) *Projector {
	p := &Projector{scene: scene, img: img}
	ob, l, t := scene.Obstruction, scene.Light, scene.Target
	p.valid = ob.ResW > 0 && ob.ResH > 0 && ob.DepthFromLight > 0 &&
		ob.WidthCm > 0 && ob.HeightCm > 0 &&
		t.WidthCm > 0 && t.HeightCm > 0 &&
		isFinite(l.DepthFromWall) && isFinite(l.Height)
	if p.valid {
		p.cellW = ob.WidthCm / Real(ob.ResW)
		p.cellH = ob.HeightCm / Real(ob.ResH)
	}
	if img != nil && (img.Rect.Dx() == 0 || img.Rect.Dy() == 0) {
		p.img = nil
	}
	return p
}

// Test reports whether cell (x,y) must be opaque.
func (p *Projector) Test(x, y int) bool {
	r := p.Trace(x, y)
	return r.Category == Ink
}

// Trace runs the cell test and returns all intermediate values.
func (p *Projector) Trace(x, y int) Ray {
	var r Ray
	if !p.valid {
		r.Category = Diverging
		return r
	}
	ob, l, t := &p.scene.Obstruction, &p.scene.Light, &p.scene.Target

	r.ObX = Real(x) * p.cellW
	r.ObY = Real(ob.ResH-1-y) * p.cellH

	r.SlopeX = (r.ObX - l.DepthFromWall) / ob.DepthFromLight
	r.SlopeY = (r.ObY - l.Height) / ob.DepthFromLight
	if r.SlopeX >= 0 || !isFinite(r.SlopeX) {
		r.Category = Diverging
		return r
	}

	// where the ray meets the side-wall (x = 0)
	r.WallZ = -l.DepthFromWall / r.SlopeX
	r.WallY = l.Height + r.WallZ*r.SlopeY

	r.PictureX = t.DepthFromLight - r.WallZ
	r.PictureY = r.WallY - t.VerticalOffset
	if !(r.PictureX >= 0 && r.PictureX < t.WidthCm) {
		r.Category = OutOfRangeX
		return r
	}
	// (0, H] on purpose: a hit exactly on the bottom edge is outside
	if !(r.PictureY > 0 && r.PictureY <= t.HeightCm) {
		r.Category = OutOfRangeY
		return r
	}
	r.HitsSilhouette = true

	if p.img == nil {
		r.Category = Blank
		return r
	}
	iw, ih := p.img.Rect.Dx(), p.img.Rect.Dy()
	px := int(math.Floor(r.PictureX / t.WidthCm * Real(iw)))
	py := ih - int(math.Ceil(r.PictureY/t.HeightCm*Real(ih)))
	var cx, cy bool
	r.PixelX, cx = clampIndex(px, iw)
	r.PixelY, cy = clampIndex(py, ih)
	r.Clamped = cx || cy

	if isInk(p.img, r.PixelX, r.PixelY) {
		r.Category = Ink
	} else {
		r.Category = Blank
	}
	return r
}
