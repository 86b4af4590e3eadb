package silhouette

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WritePBM writes m as a binary (P4) portable bitmap: 1 bits are black,
// rows padded to whole bytes.
func WritePBM(w io.Writer, m *Mask) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P4\n%d %d\n", m.W, m.H); err != nil {
		return err
	}
	row := make([]byte, (m.W+7)/8)
	for y := 0; y < m.H; y++ {
		for i := range row {
			row[i] = 0
		}
		bits := m.Bits[y*m.W : (y+1)*m.W]
		for x, on := range bits {
			if on {
				row[x>>3] |= 0x80 >> uint(x&7)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SavePBM writes m to path as P4, creating the parent directory.
func SavePBM(m *Mask, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if err := WritePBM(f, m); err != nil {
		f.Close()
		return &SaveError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}
