package silhouette

import (
	"image"
	"image/color"
)

// Mask is the obstruction grid, row-major, row 0 at the top.
// True cells are opaque.
type Mask struct {
	W, H int
	Bits []bool
}

func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{W: w, H: h, Bits: make([]bool, w*h)}
}

func (m *Mask) idx(x, y int) int { return y*m.W + x }

// At reports cell (x,y); out-of-grid cells are transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.Bits[m.idx(x, y)]
}

func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.Bits[m.idx(x, y)] = v
}

// Count returns the number of opaque cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Equal reports whether two masks have the same size and cells.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.W != o.W || m.H != o.H {
		return false
	}
	for i := range m.Bits {
		if m.Bits[i] != o.Bits[i] {
			return false
		}
	}
	return true
}

// Gray renders the mask black on white.
func (m *Mask) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.W, m.H))
	for y := 0; y < m.H; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+m.W]
		for x := range row {
			if m.Bits[m.idx(x, y)] {
				row[x] = 0
			} else {
				row[x] = 0xFF
			}
		}
	}
	return img
}

// MaskFromImage thresholds an image back into a mask: dark opaque pixels are
// opaque cells. Useful for reloading a saved obstruction.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			m.Bits[m.idx(x, y)] = c.A > InkAlphaMin && c.G < InkGreenMax
		}
	}
	return m
}
