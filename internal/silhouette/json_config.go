package silhouette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Image       string      `json:"image" yaml:"image" toml:"image"`
	Output      string      `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
	Vector      string      `json:"vector,omitempty" yaml:"vector,omitempty" toml:"vector,omitempty"` // traced outline path, empty = skip
	Potrace     string      `json:"potrace,omitempty" yaml:"potrace,omitempty" toml:"potrace,omitempty"`
	Workers     int         `json:"workers,omitempty" yaml:"workers,omitempty" toml:"workers,omitempty"`
	Supersample int         `json:"supersample,omitempty" yaml:"supersample,omitempty" toml:"supersample,omitempty"`
	Light       Light       `json:"light" yaml:"light" toml:"light"`
	Obstruction Obstruction `json:"obstruction" yaml:"obstruction" toml:"obstruction"`
	Silhouette  Target      `json:"silhouette" yaml:"silhouette" toml:"silhouette"`
	Gap         Real        `json:"gap" yaml:"gap" toml:"gap"`
	Mirror      bool        `json:"mirror,omitempty" yaml:"mirror,omitempty" toml:"mirror,omitempty"`
	Pedestal    bool        `json:"pedestal,omitempty" yaml:"pedestal,omitempty" toml:"pedestal,omitempty"`
}

// DefaultConfig is what every config file is decoded on top of, so absent
// keys keep these values.
func DefaultConfig() Config {
	s := DefaultScene()
	return Config{
		Output:      MaskOut,
		Supersample: Supersample,
		Light:       s.Light,
		Obstruction: s.Obstruction,
		Silhouette:  s.Target,
		Gap:         s.GapOffset,
	}
}

// Scene builds the arrangement described by the config.
func (c *Config) Scene() Scene {
	s := NewScene(c.Light, c.Obstruction, c.Silhouette, c.Gap)
	s.Mirror = c.Mirror
	s.Pedestal = c.Pedestal
	return s
}

// LoadConfig reads a .json, .yaml/.yml or .toml config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", "":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if err := cfg.validate(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	// relative image/output paths are taken from the config's directory
	dir := filepath.Dir(path)
	cfg.Image = resolvePath(dir, cfg.Image)
	cfg.Output = resolvePath(dir, cfg.Output)
	cfg.Vector = resolvePath(dir, cfg.Vector)
	DebugLog("Loaded config from %s: resolution=(%d, %d), supersample=%d, image=%s", path, cfg.Obstruction.ResW, cfg.Obstruction.ResH, cfg.Supersample, cfg.Image)
	return &cfg, nil
}

// validate fills non-positive sizes with defaults and rejects what cannot
// be defaulted.
func (c *Config) validate() error {
	d := DefaultConfig()
	if c.Obstruction.ResW <= 0 {
		c.Obstruction.ResW = d.Obstruction.ResW
	}
	if c.Obstruction.ResH <= 0 {
		c.Obstruction.ResH = d.Obstruction.ResH
	}
	if c.Supersample <= 0 {
		c.Supersample = Supersample
	}
	if c.Output == "" {
		c.Output = MaskOut
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Image == "" {
		return fmt.Errorf("config has no silhouette image")
	}
	return nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
