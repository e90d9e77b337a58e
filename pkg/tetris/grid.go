package tetris

const (
	Rows = 20
	Cols = 10
)

// Color is an opaque color token. The empty token marks an empty cell.
type Color string

const Empty Color = ""

// Cell is an absolute grid position holding a color
type Cell struct {
	Row   int
	Col   int
	Color Color
}

// Grid is the playfield. Row 0 is the top.
type Grid struct {
	cells [Rows][Cols]Color
}

func NewGrid() *Grid {
	return &Grid{}
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// IsOccupied reports whether the in-bounds cell holds a color.
// Out of bounds positions are never occupied.
func (g *Grid) IsOccupied(row, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	return g.cells[row][col] != Empty
}

func (g *Grid) Cell(row, col int) Color {
	if !inBounds(row, col) {
		return Empty
	}
	return g.cells[row][col]
}

// LockCells writes the given cells into the grid. Out of range cells are skipped.
func (g *Grid) LockCells(cells []Cell) {
	for _, c := range cells {
		if !inBounds(c.Row, c.Col) {
			continue
		}
		g.cells[c.Row][c.Col] = c.Color
	}
}

func (g *Grid) rowFull(row int) bool {
	for col := 0; col < Cols; col++ {
		if g.cells[row][col] == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above down by one
// and inserting an empty row at the top. It returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for row := Rows - 1; row >= 0; {
		if !g.rowFull(row) {
			row--
			continue
		}
		// Same index is examined again after the shift
		for r := row; r > 0; r-- {
			g.cells[r] = g.cells[r-1]
		}
		g.cells[0] = [Cols]Color{}
		cleared++
	}
	return cleared
}

func (g *Grid) Reset() {
	g.cells = [Rows][Cols]Color{}
}

// Copy returns an independent copy of the grid
func (g *Grid) Copy() *Grid {
	c := *g
	return &c
}
