package domain

// Index converts (row, col) to a plot index. It returns false for any
// coordinate outside the grid instead of wrapping.
func Index(row, col int) (int, bool) {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return 0, false
	}
	return row*GridSize + col, true
}

// Coord converts a plot index to (row, col). The index must be valid.
func Coord(index int) (row, col int) {
	return index / GridSize, index % GridSize
}

// ValidIndex reports whether index addresses a plot.
func ValidIndex(index int) bool {
	return index >= 0 && index < TileCount
}
