package silhouette

import (
	"context"
	"image"
	"sync"
)

// Session owns one scene, its silhouette and the latest sweep. Every edit
// re-runs the full sweep before returning; edits are serialized so a sweep
// never sees a half-applied change. A failed or cancelled edit keeps the
// previous state.
type Session struct {
	mu          sync.Mutex
	scene       Scene
	img         *Image
	supersample int

	mask      *Mask
	sums      Sums
	analytics Analytics
}

// NewSession starts a session on scene with no silhouette loaded and runs
// the first sweep.
func NewSession(ctx context.Context, scene Scene, supersample int) (*Session, error) {
	if supersample <= 0 {
		supersample = Supersample
	}
	s := &Session{scene: scene, supersample: supersample}
	if err := s.commit(ctx, scene, nil); err != nil {
		return nil, err
	}
	return s, nil
}

// commit sweeps next with img and publishes the result. Must be called with
// mu held (or before the session escapes NewSession).
func (s *Session) commit(ctx context.Context, next Scene, img *Image) error {
	mask, sums, err := Rasterize(ctx, next, img)
	if err != nil {
		return err
	}
	s.scene = next
	s.img = img
	s.mask = mask
	s.sums = sums
	s.analytics = Analyze(sums, next)
	return nil
}

// SetSilhouette pads src and makes it the sampled silhouette. A nil or empty
// image is rejected with a *LoadError and nothing changes.
func (s *Session) SetSilhouette(ctx context.Context, src image.Image) error {
	img, err := NewImage(src, s.supersample)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, s.scene, img)
}

// UpdateField edits one geometry quantity, re-solves the dependent target
// depth and re-sweeps.
func (s *Session) UpdateField(ctx context.Context, f Field, v Real) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.scene
	if err := next.UpdateField(f, v); err != nil {
		return err
	}
	return s.commit(ctx, next, s.img)
}

// SetMirror switches between the original and the mirrored silhouette.
// The padded canvas is reused.
func (s *Session) SetMirror(ctx context.Context, on bool) error {
	return s.UpdateField(ctx, FieldMirror, boolValue(on))
}

// SetPedestal toggles the mounting pedestal overlay.
func (s *Session) SetPedestal(ctx context.Context, on bool) error {
	return s.UpdateField(ctx, FieldPedestal, boolValue(on))
}

// SetScene replaces the whole arrangement at once, e.g. after a config
// reload. The target depth is re-solved from the gap.
func (s *Session) SetScene(ctx context.Context, next Scene) error {
	next.solve()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, next, s.img)
}

// Recalculate re-sweeps with unchanged inputs.
func (s *Session) Recalculate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, s.scene, s.img)
}

func (s *Session) Scene() Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene
}

// Silhouette returns the loaded silhouette, or nil.
func (s *Session) Silhouette() *Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img
}

// Mask returns the latest obstruction. It is replaced, never modified, by
// later sweeps.
func (s *Session) Mask() *Mask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mask
}

func (s *Session) Sums() Sums {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sums
}

func (s *Session) Analytics() Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analytics
}
