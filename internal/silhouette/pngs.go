package silhouette

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// SaveMask writes the obstruction black on white. The encoder follows the
// extension: .png (default), .jpg/.jpeg, .bmp, .tif/.tiff, .pbm.
func SaveMask(m *Mask, path string) error {
	if m == nil {
		return &SaveError{Path: path, Err: fmt.Errorf("no obstruction to save")}
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pbm" {
		return SavePBM(m, path)
	}
	encode, err := encoderFor(ext)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if err := encode(f, m.Gray()); err != nil {
		f.Close()
		return &SaveError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	DebugLog("Saved obstruction %dx%d to %s", m.W, m.H, path)
	return nil
}

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(ext string) (encodeFunc, error) {
	switch ext {
	case ".png", "":
		return func(w io.Writer, img image.Image) error {
			enc := png.Encoder{CompressionLevel: png.BestCompression}
			return enc.Encode(w, img)
		}, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}
	return nil, fmt.Errorf("unsupported image format %q", ext)
}
