package tetris

// PieceType identifies one of the seven tetrominoes
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceJ
	PieceL
	PieceS
	PieceZ
)

// PieceTypes lists every type in a fixed order
var PieceTypes = []PieceType{PieceI, PieceO, PieceT, PieceJ, PieceL, PieceS, PieceZ}

func (pt PieceType) String() string {
	switch pt {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is a square occupancy matrix, indexed [row][col]
type Shape [][]bool

type template struct {
	rows  []string
	color Color
}

var templates = map[PieceType]template{
	PieceI: {[]string{"0000", "1111", "0000", "0000"}, "#00F0F0"},
	PieceO: {[]string{"11", "11"}, "#F0F000"},
	PieceT: {[]string{"010", "111", "000"}, "#A200F0"},
	PieceJ: {[]string{"100", "111", "000"}, "#0000F0"},
	PieceL: {[]string{"001", "111", "000"}, "#F0A100"},
	PieceS: {[]string{"011", "110", "000"}, "#00F000"},
	PieceZ: {[]string{"110", "011", "000"}, "#F10000"},
}

// Shape returns a fresh copy of the unrotated template
func (pt PieceType) Shape() Shape {
	t, ok := templates[pt]
	if !ok {
		return nil
	}
	s := make(Shape, len(t.rows))
	for r, line := range t.rows {
		s[r] = make([]bool, len(line))
		for c, ch := range line {
			s[r][c] = ch == '1'
		}
	}
	return s
}

func (pt PieceType) Color() Color {
	return templates[pt].color
}

// Size is the side length of the shape matrix
func (s Shape) Size() int {
	return len(s)
}

// Rotated returns the shape turned 90 degrees clockwise
func (s Shape) Rotated() Shape {
	n := len(s)
	out := make(Shape, n)
	for r := range out {
		out[r] = make([]bool, n)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[c][n-1-r] = s[r][c]
		}
	}
	return out
}

// Piece is the falling tetromino. X and Y locate the top-left of the
// bounding box in grid coordinates. Transforms never modify the receiver.
type Piece struct {
	Type     PieceType
	X        int
	Y        int
	Shape    Shape
	Color    Color
	Rotation int
}

func NewPiece(pt PieceType, x, y int) Piece {
	return Piece{
		Type:  pt,
		X:     x,
		Y:     y,
		Shape: pt.Shape(),
		Color: pt.Color(),
	}
}

// ValidAt reports whether the piece fits the grid with its top-left at (x, y).
func (p Piece) ValidAt(g *Grid, x, y int) bool {
	for r, row := range p.Shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			col, line := x+c, y+r
			if !inBounds(line, col) || g.IsOccupied(line, col) {
				return false
			}
		}
	}
	return true
}

func (p Piece) Valid(g *Grid) bool {
	return p.ValidAt(g, p.X, p.Y)
}

// Translate returns the piece moved by (dx, dy) if the result is valid.
// Otherwise the piece is returned unchanged along with false.
func (p Piece) Translate(g *Grid, dx, dy int) (Piece, bool) {
	if !p.ValidAt(g, p.X+dx, p.Y+dy) {
		return p, false
	}
	moved := p
	moved.X += dx
	moved.Y += dy
	return moved, true
}

// Rotate returns the piece turned clockwise in place. There are no wall kicks.
func (p Piece) Rotate(g *Grid) (Piece, bool) {
	turned := p
	turned.Shape = p.Shape.Rotated()
	turned.Rotation = (p.Rotation + 1) % 4
	if !turned.Valid(g) {
		return p, false
	}
	return turned, true
}

// ShadowY returns the lowest row the piece could fall to from its current y
func (p Piece) ShadowY(g *Grid) int {
	y := p.Y
	for p.ValidAt(g, p.X, y+1) {
		y++
	}
	return y
}

// Cells returns the absolute occupied cells of the piece
func (p Piece) Cells() []Cell {
	var cells []Cell
	for r, row := range p.Shape {
		for c, filled := range row {
			if filled {
				cells = append(cells, Cell{Row: p.Y + r, Col: p.X + c, Color: p.Color})
			}
		}
	}
	return cells
}

// Width is the number of columns of the bounding box
func (p Piece) Width() int {
	return p.Shape.Size()
}

// Copy deep copies the shape so the result can leave the owning goroutine
func (p Piece) Copy() Piece {
	c := p
	c.Shape = make(Shape, len(p.Shape))
	for r := range p.Shape {
		c.Shape[r] = append([]bool(nil), p.Shape[r]...)
	}
	return c
}
