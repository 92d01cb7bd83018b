package engine

import "testing"

func TestHasMovesAvailable(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name: "empty cell",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 0, 4},
				{4, 2, 4, 2},
			},
			want: true,
		},
		{
			name: "horizontal pair",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 8, 8},
			},
			want: true,
		},
		{
			name: "vertical pair",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 16},
				{4, 2, 4, 16},
			},
			want: true,
		},
		{
			name: "checkerboard",
			board: Board{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasMovesAvailable(tt.board); got != tt.want {
				t.Errorf("HasMovesAvailable() = %v, want %v", got, tt.want)
			}

			anySlide := false
			for _, dir := range Directions {
				if CanSlide(tt.board, dir) {
					anySlide = true
				}
			}
			if anySlide != tt.want {
				t.Errorf("some direction can slide = %v, want %v", anySlide, tt.want)
			}
		})
	}
}

func TestEmptyCellsRowMajor(t *testing.T) {
	board := Board{
		{0, 2, 0},
		{4, 4, 4},
		{0, 8, 8},
	}
	want := []Coord{{0, 0}, {0, 2}, {2, 0}}

	got := EmptyCells(board)
	if len(got) != len(want) {
		t.Fatalf("EmptyCells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EmptyCells[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 0},
		{512, 64},
	}
	if got := MaxTile(board); got != 512 {
		t.Errorf("MaxTile = %d, want 512", got)
	}
	if got := MaxTile(NewBoard(4)); got != 0 {
		t.Errorf("MaxTile(empty) = %d, want 0", got)
	}
}

func TestHistoryCap(t *testing.T) {
	h := NewHistory(2)
	for i := 1; i <= 3; i++ {
		h.Push(Snapshot{Score: i})
	}

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	s, _ := h.Pop()
	if s.Score != 3 {
		t.Errorf("Pop score = %d, want 3", s.Score)
	}
	s, _ = h.Pop()
	if s.Score != 2 {
		t.Errorf("Pop score = %d, want 2 (oldest dropped)", s.Score)
	}
	if _, ok := h.Pop(); ok {
		t.Error("history should be empty")
	}
}

func TestHistoryUnbounded(t *testing.T) {
	h := NewHistory(0)
	for i := range 100 {
		h.Push(Snapshot{Score: i})
	}
	if h.Len() != 100 {
		t.Errorf("Len = %d, want 100", h.Len())
	}
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len after Clear = %d", h.Len())
	}
}
