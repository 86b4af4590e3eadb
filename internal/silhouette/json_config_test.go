package silhouette

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func checkLampConfig(t *testing.T, cfg *Config, dir string) {
	t.Helper()
	if cfg.Image != filepath.Join(dir, "bear.png") {
		t.Fatalf("image path not resolved: %s", cfg.Image)
	}
	if cfg.Output != filepath.Join(dir, MaskOut) {
		t.Fatalf("output default not applied: %s", cfg.Output)
	}
	s := cfg.Scene()
	if s.Light.DepthFromWall != 19.5 || s.Light.Height != 2 {
		t.Fatalf("light wrong: %+v", s.Light)
	}
	if s.Obstruction.WidthCm != 30 || s.Obstruction.ResW != 4096 || s.Obstruction.ResH != ResolutionH || s.Obstruction.DepthFromLight != 10 {
		t.Fatalf("obstruction wrong: %+v", s.Obstruction)
	}
	if s.Target.WidthCm != 100 || s.Target.DepthFromLight != 110 {
		t.Fatalf("target wrong: %+v", s.Target)
	}
	if !s.Pedestal || s.Mirror {
		t.Fatalf("flags wrong: %+v", s)
	}
	// keys absent from the file keep their defaults
	if s.Obstruction.HeightCm != ObstructionHeightCm || cfg.Supersample != Supersample {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lamp.json", `{
  "image": "bear.png",
  "light": {"depthFromWall": 19.5, "height": 2},
  "obstruction": {"width": 30, "resolutionW": 4096, "depth": 10},
  "silhouette": {"width": 100, "height": 100},
  "pedestal": true
}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	checkLampConfig(t, cfg, dir)
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lamp.yml", `image: bear.png
light:
  depthFromWall: 19.5
  height: 2
obstruction:
  width: 30
  resolutionW: 4096
  depth: 10
silhouette:
  width: 100
  height: 100
pedestal: true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	checkLampConfig(t, cfg, dir)
}

func TestLoadConfigTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lamp.toml", `image = "bear.png"
pedestal = true

[light]
depthFromWall = 19.5
height = 2.0

[obstruction]
width = 30.0
resolutionW = 4096
depth = 10.0

[silhouette]
width = 100.0
height = 100.0
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	checkLampConfig(t, cfg, dir)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	var ce *ConfigError
	cases := map[string]string{
		"noimage.json": `{"light": {"height": 1}}`,
		"broken.json":  `{"image": `,
		"workers.json": `{"image": "a.png", "workers": -2}`,
		"scene.ini":    `image=a.png`,
	}
	for name, body := range cases {
		if _, err := LoadConfig(writeFile(t, dir, name, body)); !errors.As(err, &ce) {
			t.Fatalf("%s: expected ConfigError, got %v", name, err)
		}
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.As(err, &ce) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ConfigError wrapping ErrNotExist, got %v", err)
	}
}

func TestLoadConfigAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(t.TempDir(), "abs.png")
	path := writeFile(t, dir, "abs.json", `{"image": "`+img+`", "output": "out/mask.bmp", "vector": "cut.svg", "obstruction": {"resolutionW": -1}}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Image != img || cfg.Output != filepath.Join(dir, "out", "mask.bmp") || cfg.Vector != filepath.Join(dir, "cut.svg") {
		t.Fatalf("paths wrong: %+v", cfg)
	}
	if cfg.Obstruction.ResW != ResolutionW {
		t.Fatalf("non-positive resolution not defaulted: %d", cfg.Obstruction.ResW)
	}
}
