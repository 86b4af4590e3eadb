package silhouette

import "time"

type Real = float64

// Defaults for a fresh scene and for fields missing from a config file.
const (
	ResolutionW            = 1024
	ResolutionH            = 1024
	ObstructionWidthCm     = 10
	ObstructionHeightCm    = 10
	ObstructionDepthCm     = 20
	LightDepthFromWallCm   = 5
	LightHeightCm          = 3
	SilhouetteWidthCm      = 25
	SilhouetteHeightCm     = 25
	SilhouetteOffsetCm     = 0
	GapOffsetCm            = 0
	Supersample            = 8 // padded canvas side = Supersample * longer image side
	PedestalRows           = 4 // pedestal band starts this many rows above the lowest ink row
	InkAlphaMin            = 128
	InkGreenMax            = 128
	MaskOut                = "obstruction.png"
	PotraceBinary          = "potrace"
	WatchDebounce          = 250 * time.Millisecond
	progressSteps          = 10 // progress lines per sweep in debug mode
	defaultPotraceBackend  = "svg"
	mmPerCm                = 10
)
