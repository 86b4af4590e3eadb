package silhouette

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImageFile decodes a silhouette from disk. Any format with a registered
// decoder works (PNG, JPEG, GIF, BMP, TIFF, WebP).
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	img, err := LoadImage(f)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return img, nil
}

// LoadImage decodes a silhouette from r and rejects empty images.
func LoadImage(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("failed to decode image: %w", err)}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &LoadError{Err: errEmptyImage}
	}
	DebugLog("Decoded %s silhouette %dx%d", format, b.Dx(), b.Dy())
	return img, nil
}
