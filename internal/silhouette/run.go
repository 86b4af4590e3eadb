package silhouette

import (
	"context"
	"fmt"
	"time"
)

// Report is the outcome of one config run.
type Report struct {
	Mask      *Mask
	Sums      Sums
	Analytics Analytics
	Output    string
	Vector    string
}

func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	rep, err := RunConfig(context.Background(), cfg)
	if rep != nil {
		printReport(rep)
	}
	return err
}

// RunConfig loads the silhouette, sweeps the scene, writes the obstruction
// and, when configured, the traced outline. Save and export failures still
// return the report of the finished sweep.
func RunConfig(ctx context.Context, cfg *Config) (*Report, error) {
	if cfg.Workers > 0 {
		Workers = cfg.Workers
	}
	if cfg.Potrace != "" {
		Potrace = cfg.Potrace
	}
	src, err := LoadImageFile(cfg.Image)
	if err != nil {
		return nil, err
	}

	scene := cfg.Scene()
	sess, err := NewSession(ctx, scene, cfg.Supersample)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	if err := sess.SetSilhouette(ctx, src); err != nil {
		return nil, err
	}
	DebugLog("Sweep %dx%d took %s", scene.Obstruction.ResW, scene.Obstruction.ResH, time.Since(start))

	rep := &Report{
		Mask:      sess.Mask(),
		Sums:      sess.Sums(),
		Analytics: sess.Analytics(),
	}
	if err := SaveMask(rep.Mask, cfg.Output); err != nil {
		return rep, err
	}
	rep.Output = cfg.Output

	if cfg.Vector != "" {
		wmm := scene.Obstruction.WidthCm * mmPerCm
		hmm := scene.Obstruction.HeightCm * mmPerCm
		if err := ExportVector(ctx, rep.Mask, wmm, hmm, cfg.Vector); err != nil {
			return rep, err
		}
		rep.Vector = cfg.Vector
	}
	return rep, nil
}

func printReport(r *Report) {
	a := r.Analytics
	if r.Output != "" {
		fmt.Printf("Obstruction: %s\n", r.Output)
	}
	fmt.Printf("Grid: %dx%d, %d opaque cells\n", r.Mask.W, r.Mask.H, a.PixelCount)
	if r.Vector != "" {
		fmt.Printf("Outline: %s\n", r.Vector)
	}
	fmt.Printf("Centroid: (%.2f, %.2f) cm\n", a.Centroid.X, a.Centroid.Y)
	fmt.Printf("Viewing half-angle: %.2f deg\n", a.ViewingHalfAngleDeg)
	fmt.Printf("Pitch: %.2f deg, yaw: %.2f deg\n", a.PitchDeg, a.YawDeg)
}
