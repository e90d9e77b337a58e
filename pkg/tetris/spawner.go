package tetris

import (
	"math/rand"
)

// Source picks an integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Spawner creates new pieces, uniformly at random among all types
type Spawner struct {
	src Source
}

func NewSpawner(src Source) *Spawner {
	return &Spawner{src: src}
}

func NewRandomSpawner(seed int64) *Spawner {
	return NewSpawner(rand.New(rand.NewSource(seed)))
}

// CreatePiece returns an unrotated piece centered horizontally on the top row
func (sp *Spawner) CreatePiece() Piece {
	pt := PieceTypes[sp.src.Intn(len(PieceTypes))]
	p := NewPiece(pt, 0, 0)
	p.X = (Cols - p.Width()) / 2
	return p
}
