package silhouette

import "fmt"

// Obstruction is the stencil plane, perpendicular to the side-wall and
// parallel to the light's straight-ahead axis offset by DepthFromLight.
type Obstruction struct {
	WidthCm        Real `json:"width" yaml:"width" toml:"width"`
	HeightCm       Real `json:"height" yaml:"height" toml:"height"`
	ResW           int  `json:"resolutionW" yaml:"resolutionW" toml:"resolutionW"`
	ResH           int  `json:"resolutionH" yaml:"resolutionH" toml:"resolutionH"`
	DepthFromLight Real `json:"depth" yaml:"depth" toml:"depth"`
}

// Target is the patch of side-wall the silhouette should appear on.
// DepthFromLight is its far edge and is always derived, never set directly.
type Target struct {
	DepthFromLight Real `json:"-" yaml:"-" toml:"-"`
	VerticalOffset Real `json:"verticalOffset" yaml:"verticalOffset" toml:"verticalOffset"`
	WidthCm        Real `json:"width" yaml:"width" toml:"width"`
	HeightCm       Real `json:"height" yaml:"height" toml:"height"`
}

// Scene is the full projection arrangement.
type Scene struct {
	Light       Light
	Obstruction Obstruction
	Target      Target
	GapOffset   Real
	Mirror      bool
	Pedestal    bool
}

// NewScene builds a scene and solves the dependent target depth.
func NewScene(light Light, ob Obstruction, target Target, gap Real) Scene {
	s := Scene{
		Light:       light,
		Obstruction: ob,
		Target:      target,
		GapOffset:   gap,
	}
	s.solve()
	DebugLog("Created scene light=%+v obstruction=%+v target=%+v gap=%.2f", s.Light, s.Obstruction, s.Target, s.GapOffset)
	return s
}

// DefaultScene is the arrangement a fresh session starts with.
func DefaultScene() Scene {
	return NewScene(
		Light{DepthFromWall: LightDepthFromWallCm, Height: LightHeightCm},
		Obstruction{
			WidthCm:        ObstructionWidthCm,
			HeightCm:       ObstructionHeightCm,
			ResW:           ResolutionW,
			ResH:           ResolutionH,
			DepthFromLight: ObstructionDepthCm,
		},
		Target{
			VerticalOffset: SilhouetteOffsetCm,
			WidthCm:        SilhouetteWidthCm,
			HeightCm:       SilhouetteHeightCm,
		},
		GapOffsetCm,
	)
}

// solve re-derives the target depth so the gap between the obstruction and
// the near edge of the target stays fixed.
func (s *Scene) solve() {
	s.Target.DepthFromLight = s.Obstruction.DepthFromLight + s.Target.WidthCm + s.GapOffset
}

// CellSize returns the physical size of one obstruction cell.
func (s *Scene) CellSize() (dx, dy Real) {
	if s.Obstruction.ResW <= 0 || s.Obstruction.ResH <= 0 {
		return 0, 0
	}
	return s.Obstruction.WidthCm / Real(s.Obstruction.ResW), s.Obstruction.HeightCm / Real(s.Obstruction.ResH)
}

// Field names one user-editable geometry quantity.
type Field uint8

const (
	FieldSilhouetteSize   Field = iota // target width and height, cm
	FieldObstructionSize               // obstruction width and height, cm
	FieldLightDepth                    // light distance from the side-wall, cm
	FieldLightHeight                   // light height, cm
	FieldSilhouetteOffset              // target vertical offset, cm
	FieldGapOffset                     // obstruction to target gap, cm
	FieldObstructionDepth              // obstruction distance from the light, cm
	FieldPedestal                      // bool: non-zero adds the mounting pedestal
	FieldMirror                        // bool: non-zero mirrors the silhouette
	numFields
)

var fieldNames = [numFields]string{
	"silhouetteSize",
	"obstructionSize",
	"lightDepth",
	"lightHeight",
	"silhouetteOffset",
	"gapOffset",
	"obstructionDepth",
	"pedestal",
	"mirror",
}

func (f Field) String() string {
	if f < numFields {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

// ParseField maps a field name back to its kind.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// UpdateField sets one quantity and re-solves the target depth.
// Boolean fields treat any non-zero value as true.
func (s *Scene) UpdateField(f Field, v Real) error {
	switch f {
	case FieldSilhouetteSize:
		s.Target.WidthCm, s.Target.HeightCm = v, v
	case FieldObstructionSize:
		s.Obstruction.WidthCm, s.Obstruction.HeightCm = v, v
	case FieldLightDepth:
		s.Light.DepthFromWall = v
	case FieldLightHeight:
		s.Light.Height = v
	case FieldSilhouetteOffset:
		s.Target.VerticalOffset = v
	case FieldGapOffset:
		s.GapOffset = v
	case FieldObstructionDepth:
		s.Obstruction.DepthFromLight = v
	case FieldPedestal:
		s.Pedestal = v != 0
	case FieldMirror:
		s.Mirror = v != 0
	default:
		return fmt.Errorf("%w: %v", ErrUnknownField, f)
	}
	s.solve()
	return nil
}

// Value reads a field back; booleans come back as 0 or 1.
func (s *Scene) Value(f Field) (Real, error) {
	switch f {
	case FieldSilhouetteSize:
		return s.Target.WidthCm, nil
	case FieldObstructionSize:
		return s.Obstruction.WidthCm, nil
	case FieldLightDepth:
		return s.Light.DepthFromWall, nil
	case FieldLightHeight:
		return s.Light.Height, nil
	case FieldSilhouetteOffset:
		return s.Target.VerticalOffset, nil
	case FieldGapOffset:
		return s.GapOffset, nil
	case FieldObstructionDepth:
		return s.Obstruction.DepthFromLight, nil
	case FieldPedestal:
		return boolValue(s.Pedestal), nil
	case FieldMirror:
		return boolValue(s.Mirror), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownField, f)
}
