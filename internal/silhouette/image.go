package silhouette

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
)

// Image is a padded silhouette ready for point sampling. The canonical
// padded canvas never changes after NewImage; the mirrored variant is
// derived from it on first use and cached.
type Image struct {
	canonical *image.NRGBA
	factor    int

	mirrorOnce sync.Once
	mirrored   *image.NRGBA
}

// NewImage pads src onto a white square canvas whose side is factor times
// the longer side of src. The source is scaled by factor with Catmull-Rom,
// centered horizontally and resting on the bottom edge.
func NewImage(src image.Image, factor int) (*Image, error) {
	if src == nil {
		return nil, &LoadError{Err: errNilImage}
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &LoadError{Err: errEmptyImage}
	}
	if factor <= 0 {
		factor = Supersample
	}
	w, h := b.Dx()*factor, b.Dy()*factor
	side := imax(w, h)

	canvas := image.NewNRGBA(image.Rect(0, 0, side, side))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	x0 := (side - w) / 2
	dst := image.Rect(x0, side-h, x0+w, side)
	draw.CatmullRom.Scale(canvas, dst, src, b, draw.Over, nil)

	DebugLog("Padded silhouette %dx%d -> %dx%d (factor %d)", b.Dx(), b.Dy(), side, side, factor)
	return &Image{canonical: canvas, factor: factor}, nil
}

// Bounds returns the padded canvas size.
func (im *Image) Bounds() image.Rectangle { return im.canonical.Bounds() }

// Factor returns the supersampling factor the canvas was built with.
func (im *Image) Factor() int { return im.factor }

// Canonical returns the unmirrored padded canvas. Callers must not modify it.
func (im *Image) Canonical() *image.NRGBA { return im.canonical }

// Mirrored returns the horizontally flipped canvas, building it once.
func (im *Image) Mirrored() *image.NRGBA {
	im.mirrorOnce.Do(func() {
		im.mirrored = flipHorizontal(im.canonical)
		DebugLog("Derived mirrored silhouette %dx%d", im.mirrored.Rect.Dx(), im.mirrored.Rect.Dy())
	})
	return im.mirrored
}

// Sampling returns the canvas the projector should read for the mirror flag.
func (im *Image) Sampling(mirror bool) *image.NRGBA {
	if mirror {
		return im.Mirrored()
	}
	return im.canonical
}

func flipHorizontal(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		srow := src.Pix[y*src.Stride : y*src.Stride+w*4]
		drow := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w; x++ {
			copy(drow[(w-1-x)*4:(w-x)*4], srow[x*4:(x+1)*4])
		}
	}
	return dst
}

// isInk reports whether pixel (x,y) of img counts as shadow material.
// Coordinates are relative to the image origin and must be in range.
func isInk(img *image.NRGBA, x, y int) bool {
	p := img.Pix[y*img.Stride+x*4:]
	return p[3] > InkAlphaMin && p[1] < InkGreenMax
}
