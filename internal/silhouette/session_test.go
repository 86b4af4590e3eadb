package silhouette

import (
	"context"
	"errors"
	"image"
	"testing"
)

func newLampSession(t *testing.T, res int) *Session {
	t.Helper()
	s, err := NewSession(context.Background(), lampScene(res), 2)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSessionStartsEmpty(t *testing.T) {
	s := newLampSession(t, 32)
	if s.Silhouette() != nil || s.Mask().Count() != 0 || s.Analytics() != (Analytics{}) {
		t.Fatal("a session without a silhouette should be empty")
	}
}

func TestSessionSetSilhouette(t *testing.T) {
	ctx := context.Background()
	s := newLampSession(t, 48)
	if err := s.SetSilhouette(ctx, solidImage(4, 4, black)); err != nil {
		t.Fatal(err)
	}
	if s.Mask().Count() == 0 || s.Analytics().PixelCount != int64(s.Mask().Count()) {
		t.Fatal("silhouette did not produce a mask")
	}
	if s.Silhouette().Factor() != 2 {
		t.Fatalf("supersample not used: %d", s.Silhouette().Factor())
	}

	before, img := s.Mask(), s.Silhouette()
	var le *LoadError
	if err := s.SetSilhouette(ctx, image.NewNRGBA(image.Rect(0, 0, 0, 0))); !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if s.Mask() != before || s.Silhouette() != img {
		t.Fatal("failed load must keep the previous state")
	}
}

func TestSessionUpdateField(t *testing.T) {
	ctx := context.Background()
	s := newLampSession(t, 48)
	if err := s.SetSilhouette(ctx, solidImage(4, 4, black)); err != nil {
		t.Fatal(err)
	}
	first := s.Mask()
	if err := s.UpdateField(ctx, FieldObstructionDepth, 12); err != nil {
		t.Fatal(err)
	}
	sc := s.Scene()
	if sc.Target.DepthFromLight != 12+100 {
		t.Fatalf("target depth not re-solved: %v", sc.Target.DepthFromLight)
	}
	if s.Mask() == first {
		t.Fatal("edit did not re-sweep")
	}
	if err := s.UpdateField(ctx, Field(99), 1); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if s.Scene() != sc {
		t.Fatal("unknown field changed the scene")
	}
}

func TestSessionCancelledEditKeepsState(t *testing.T) {
	s := newLampSession(t, 32)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	before := s.Scene()
	if err := s.UpdateField(ctx, FieldLightHeight, 9); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if s.Scene() != before {
		t.Fatal("cancelled edit was committed")
	}
}

func TestSessionMirrorRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newLampSession(t, 64)
	if err := s.SetSilhouette(ctx, halfImage(4, 4)); err != nil {
		t.Fatal(err)
	}
	orig, img := s.Mask(), s.Silhouette()
	if err := s.SetMirror(ctx, true); err != nil {
		t.Fatal(err)
	}
	if s.Mask().Equal(orig) {
		t.Fatal("mirror did not change the mask")
	}
	if err := s.SetMirror(ctx, false); err != nil {
		t.Fatal(err)
	}
	if !s.Mask().Equal(orig) {
		t.Fatal("mirror twice did not restore the mask")
	}
	if s.Silhouette() != img || img.Sampling(s.Scene().Mirror) != img.Canonical() {
		t.Fatal("mirror should not re-pad the silhouette")
	}
}

func TestSessionPedestalAndScene(t *testing.T) {
	ctx := context.Background()
	s := newLampSession(t, 64)
	if err := s.SetSilhouette(ctx, solidImage(4, 4, black)); err != nil {
		t.Fatal(err)
	}
	raw := s.Sums()
	if err := s.SetPedestal(ctx, true); err != nil {
		t.Fatal(err)
	}
	if !s.Mask().At(0, 0) || s.Sums() != raw {
		t.Fatal("pedestal overlay wrong")
	}

	next := lampScene(32)
	next.GapOffset = 5
	if err := s.SetScene(ctx, next); err != nil {
		t.Fatal(err)
	}
	if got := s.Scene().Target.DepthFromLight; got != 10+100+5 {
		t.Fatalf("SetScene did not re-solve: %v", got)
	}
	if s.Mask().W != 32 {
		t.Fatalf("SetScene did not re-sweep: %d", s.Mask().W)
	}
	if err := s.Recalculate(ctx); err != nil {
		t.Fatal(err)
	}
}
