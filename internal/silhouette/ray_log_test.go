package silhouette

import "testing"

func TestCategoryString(t *testing.T) {
	if Ink.String() != "ink" || OutOfRangeY.String() != "out_of_range_y" {
		t.Fatalf("names wrong: %s %s", Ink, OutOfRangeY)
	}
	if got := Category(42).String(); got != "Category(42)" {
		t.Fatalf("unknown category: %s", got)
	}
}

func TestRayStats(t *testing.T) {
	var s RayStats
	s[Ink] = 3
	s[Diverging] = 2
	s.add(RayStats{Blank: 1, Ink: 1})
	if s.Total() != 7 {
		t.Fatalf("total: %d", s.Total())
	}
	want := "ink=4 blank=1 diverging=2 out_of_range_x=0 out_of_range_y=0"
	if s.String() != want {
		t.Fatalf("got %q want %q", s.String(), want)
	}
}
