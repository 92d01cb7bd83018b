package engine

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(b Board) []Coord {
	var cells []Coord
	for row := range b {
		for col := range b[row] {
			if b[row][col] == 0 {
				cells = append(cells, Coord{Row: row, Col: col})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(b Board) bool {
	for row := range b {
		for col := range b[row] {
			if b[row][col] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any two orthogonal neighbours are equal.
// Checking right and down from every cell covers all four directions.
func HasPossibleMerge(b Board) bool {
	size := b.Size()
	for row := range size {
		for col := range size {
			val := b[row][col]
			if val == 0 {
				continue
			}
			if col < size-1 && b[row][col+1] == val {
				return true
			}
			if row < size-1 && b[row+1][col] == val {
				return true
			}
		}
	}
	return false
}

// HasMovesAvailable returns true if any move can change the board.
func HasMovesAvailable(b Board) bool {
	return HasEmptyCell(b) || HasPossibleMerge(b)
}

// MaxTile returns the highest tile on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for _, row := range b {
		for _, v := range row {
			maxVal = max(maxVal, v)
		}
	}
	return maxVal
}
