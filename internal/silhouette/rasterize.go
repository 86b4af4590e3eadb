package silhouette

import (
	"context"
	"image"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Sums is everything a sweep accumulates over opaque cells, captured before
// any overlay is drawn. Extrema are 0 when Count is 0.
type Sums struct {
	SumX, SumY int64
	Count      int64
	MinX, MinY int
	MaxX, MaxY int
	Clamped    int64 // cells whose pixel index had to be clamped
	Rays       RayStats
}

func emptySums(w, h int) Sums {
	return Sums{MinX: w, MinY: h, MaxX: -1, MaxY: -1}
}

func (s *Sums) merge(o Sums) {
	s.SumX += o.SumX
	s.SumY += o.SumY
	s.Count += o.Count
	s.MinX = imin(s.MinX, o.MinX)
	s.MinY = imin(s.MinY, o.MinY)
	s.MaxX = imax(s.MaxX, o.MaxX)
	s.MaxY = imax(s.MaxY, o.MaxY)
	s.Clamped += o.Clamped
	s.Rays.add(o.Rays)
}

func (s *Sums) finish() {
	if s.Count == 0 {
		s.MinX, s.MinY, s.MaxX, s.MaxY = 0, 0, 0, 0
	}
}

func workerCount(rows int) int {
	workers := Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if workers > rows {
		workers = rows
	}
	return workers
}

// Rasterize sweeps the whole obstruction grid. Rows are split into
// contiguous bands, one per worker; each band writes only its own rows and
// keeps local sums that are merged afterwards, so the result does not depend
// on scheduling. The pedestal overlay, if enabled, is drawn after the sums
// are captured.
func Rasterize(ctx context.Context, scene Scene, img *Image) (*Mask, Sums, error) {
	var sampling *image.NRGBA
	if img != nil {
		sampling = img.Sampling(scene.Mirror)
	}
	proj := NewProjector(scene, sampling)

	w, h := scene.Obstruction.ResW, scene.Obstruction.ResH
	mask := NewMask(w, h)
	sums := emptySums(w, h)
	if w <= 0 || h <= 0 {
		sums.finish()
		if scene.Pedestal {
			applyPedestal(mask, sums)
		}
		return mask, sums, nil
	}

	workers := workerCount(h)
	partials := make([]Sums, workers)
	base, rem := h/workers, h%workers

	var done int64
	step := int64(h / progressSteps)
	if step < 1 {
		step = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	y0 := 0
	for wid := 0; wid < workers; wid++ {
		wid := wid
		n := base
		if wid < rem {
			n++
		}
		from, to := y0, y0+n
		y0 = to
		g.Go(func() error {
			local := emptySums(w, h)
			for y := from; y < to; y++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				row := mask.Bits[y*w : (y+1)*w]
				for x := 0; x < w; x++ {
					r := proj.Trace(x, y)
					local.Rays[r.Category]++
					if r.Clamped {
						local.Clamped++
					}
					if r.Category != Ink {
						continue
					}
					row[x] = true
					local.SumX += int64(x)
					local.SumY += int64(y)
					local.Count++
					if x < local.MinX {
						local.MinX = x
					}
					if x > local.MaxX {
						local.MaxX = x
					}
					if y < local.MinY {
						local.MinY = y
					}
					if y > local.MaxY {
						local.MaxY = y
					}
				}
				if Debug {
					if d := atomic.AddInt64(&done, 1); d%step == 0 {
						DebugLog("[PROGRESS] %.2f%%", Real(d)*100/Real(h))
					}
				}
			}
			partials[wid] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Sums{}, err
	}

	for _, p := range partials {
		sums.merge(p)
	}
	sums.finish()

	if sums.Clamped > 0 {
		Logger().Warn("silhouette sample index clamped", "cells", sums.Clamped)
	}
	DebugLog("Sweep %dx%d with %d workers: %s", w, h, workers, sums.Rays)

	if scene.Pedestal {
		applyPedestal(mask, sums)
	}
	return mask, sums, nil
}

// applyPedestal forces cell (0,0) on and fills a solid band from PedestalRows
// above the lowest opaque row down to the bottom edge, spanning columns
// 0..MaxX. The band needs a non-empty sweep to have extrema.
func applyPedestal(mask *Mask, sums Sums) {
	mask.Set(0, 0, true)
	if sums.Count == 0 {
		return
	}
	for y := imax(0, sums.MaxY-PedestalRows); y < mask.H; y++ {
		row := mask.Bits[y*mask.W : (y+1)*mask.W]
		for x := 0; x <= sums.MaxX && x < mask.W; x++ {
			row[x] = true
		}
	}
}
