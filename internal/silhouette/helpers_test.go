package silhouette

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// halfImage is black on the left half and white on the right.
func halfImage(w, h int) *image.NRGBA {
	img := solidImage(w, h, color.NRGBA{255, 255, 255, 255})
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 255})
		}
	}
	return img
}

var (
	black       = color.NRGBA{0, 0, 0, 255}
	transparent = color.NRGBA{0, 0, 0, 0}
)

// lampScene is the reference desk-lamp arrangement at a test-friendly resolution.
func lampScene(res int) Scene {
	return NewScene(
		Light{DepthFromWall: 19.5, Height: 2},
		Obstruction{WidthCm: 30, HeightCm: 30, ResW: res, ResH: res, DepthFromLight: 10},
		Target{WidthCm: 100, HeightCm: 100},
		0,
	)
}

func mustImage(t *testing.T, src image.Image, factor int) *Image {
	t.Helper()
	img, err := NewImage(src, factor)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	return img
}

func withWorkers(t *testing.T, n int) {
	t.Helper()
	old := Workers
	Workers = n
	t.Cleanup(func() { Workers = old })
}
