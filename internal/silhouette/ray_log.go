package silhouette

import (
	"fmt"
	"strings"
)

type Category uint8

const (
	Ink         Category = iota // ray lands on an ink pixel
	Blank                       // ray lands on the silhouette but not on ink
	Diverging                   // ray heads away from the side-wall
	OutOfRangeX                 // wall hit outside the silhouette horizontally
	OutOfRangeY                 // wall hit outside the silhouette vertically
	numCategories
)

var categoryNames = [numCategories]string{"ink", "blank", "diverging", "out_of_range_x", "out_of_range_y"}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// RayStats counts projector outcomes for one sweep.
type RayStats [numCategories]int64

func (s *RayStats) add(o RayStats) {
	for i := range s {
		s[i] += o[i]
	}
}

func (s RayStats) Total() int64 {
	var n int64
	for _, v := range s {
		n += v
	}
	return n
}

func (s RayStats) String() string {
	var sb strings.Builder
	for i, v := range s {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%s=%d", Category(i), v)
	}
	return sb.String()
}
