package silhouette

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

var potraceBackends = map[string]string{
	".svg": "svg",
	".pdf": "pdf",
	".eps": "eps",
	".ps":  "postscript",
	".dxf": "dxf",
}

func potraceBinary() string {
	if Potrace != "" {
		return Potrace
	}
	return PotraceBinary
}

// ExportVector traces m into a cuttable outline at out. The mask is handed
// to potrace as a temporary PBM together with the physical size in
// millimeters; the backend follows the extension of out (svg by default).
func ExportVector(ctx context.Context, m *Mask, widthMM, heightMM Real, out string) error {
	if m == nil || m.W == 0 || m.H == 0 {
		return &ExportError{Path: out, Err: fmt.Errorf("empty obstruction")}
	}
	backend, ok := potraceBackends[strings.ToLower(filepath.Ext(out))]
	if !ok {
		backend = defaultPotraceBackend
	}

	tmp, err := os.CreateTemp("", "obstruction-*.pbm")
	if err != nil {
		return &ExportError{Path: out, Err: err}
	}
	defer os.Remove(tmp.Name())
	if err := WritePBM(tmp, m); err != nil {
		tmp.Close()
		return &ExportError{Path: out, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &ExportError{Path: out, Err: err}
	}

	args := []string{
		"--backend", backend,
		"-W", mm(widthMM),
		"-H", mm(heightMM),
		"-o", out,
		tmp.Name(),
	}
	bin := potraceBinary()
	DebugLog("Running %s %s", bin, strings.Join(args, " "))

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return &ExportError{Path: out, Output: strings.TrimSpace(output.String()), Err: err}
	}
	return nil
}

func mm(v Real) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "mm"
}
