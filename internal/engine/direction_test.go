package engine

import "testing"

func TestVectorFor(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Vector
	}{
		{DirUp, Vector{DRow: -1}},
		{DirDown, Vector{DRow: 1}},
		{DirLeft, Vector{DCol: -1}},
		{DirRight, Vector{DCol: 1}},
	}

	for _, tt := range tests {
		if got := VectorFor(tt.dir); got != tt.want {
			t.Errorf("VectorFor(%s) = %+v, want %+v", tt.dir, got, tt.want)
		}
	}

	if got := VectorFor(Direction(-1)); got != (Vector{}) {
		t.Errorf("VectorFor(invalid) = %+v, want zero vector", got)
	}
}

func TestBuildTraversals(t *testing.T) {
	tests := []struct {
		dir  Direction
		rows []int
		cols []int
	}{
		{DirUp, []int{0, 1, 2, 3}, []int{0, 1, 2, 3}},
		{DirDown, []int{3, 2, 1, 0}, []int{0, 1, 2, 3}},
		{DirLeft, []int{0, 1, 2, 3}, []int{0, 1, 2, 3}},
		{DirRight, []int{0, 1, 2, 3}, []int{3, 2, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			tr := BuildTraversals(VectorFor(tt.dir), 4)
			if !rowsEqual(tr.Rows, tt.rows) {
				t.Errorf("rows = %v, want %v", tr.Rows, tt.rows)
			}
			if !rowsEqual(tr.Cols, tt.cols) {
				t.Errorf("cols = %v, want %v", tr.Cols, tt.cols)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	names := []string{"up", "down", "left", "right"}
	for i, dir := range Directions {
		if dir.String() != names[i] {
			t.Errorf("Directions[%d].String() = %q, want %q", i, dir.String(), names[i])
		}
		if !dir.Valid() {
			t.Errorf("%s should be valid", dir)
		}
	}
	if Direction(4).Valid() {
		t.Error("Direction(4) should be invalid")
	}
}
