package tetris

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRotationCount(t *testing.T) {
	want := map[Shape]int{I: 2, O: 1, T: 4, L: 4, J: 4, S: 2, Z: 2}
	got := make(map[Shape]int)
	for _, s := range Shapes {
		got[s] = s.RotationCount()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rotation count mismatch(-want +got):\n%s", diff)
	}
}

func TestRotationCells(t *testing.T) {
	for _, s := range Shapes {
		for r := range s.RotationCount() {
			seen := make(map[Point]bool)
			for _, p := range s.Rotation(r) {
				if p.X < 0 || p.X > 3 || p.Y < 0 || p.Y > 3 {
					t.Errorf("%v rotation %d: offset %v outside the 4x4 box", s, r, p)
				}
				seen[p] = true
			}
			if len(seen) != 4 {
				t.Errorf("%v rotation %d: wanted 4 distinct cells, got %d", s, r, len(seen))
			}
		}
	}
}

func TestKicks(t *testing.T) {
	tests := []struct {
		shape Shape
		from  int
		want  []Point
	}{
		{O, 0, []Point{{0, 0}}},
		{I, 0, []Point{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}},
		{I, 1, []Point{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}}},
		{T, 0, []Point{{0, 0}, {-1, 0}, {1, 0}, {0, 1}, {-1, 1}}},
		{T, 3, []Point{{0, 0}, {-1, 0}, {1, 0}, {0, 1}, {-1, 1}}},
		{L, 2, []Point{{0, 0}, {-1, 0}, {1, 0}, {0, 1}, {-1, 1}}},
		{J, 1, []Point{{0, 0}, {-1, 0}, {1, 0}, {0, 1}, {-1, 1}}},
		{S, 1, []Point{{0, 0}, {0, 1}, {1, 1}, {-1, 0}, {0, -1}}},
		{Z, 0, []Point{{0, 0}, {0, 1}, {1, 1}, {-1, 0}, {0, -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, kicks(tt.shape, tt.from)); diff != "" {
				t.Errorf("kicks from rotation %d mismatch(-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestShapeString(t *testing.T) {
	var got string
	for _, s := range Shapes {
		got += s.String()
	}
	if got != "IOTLJSZ" {
		t.Errorf("wanted IOTLJSZ, got %s", got)
	}
	if Shape(9).String() != "?" {
		t.Errorf("wanted ? for an unknown shape, got %s", Shape(9).String())
	}
}
