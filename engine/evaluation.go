package engine

import (
	gm "gosling-engine/goslingmg"
)

// PieceValue maps a colorless piece type to its material value in
// centipawns. The king value dwarfs the rest so that no material swing can
// ever outweigh it; mate detection itself lives in the search, not here.
var PieceValue = [7]int32{
	gm.PieceTypeNone:   0,
	gm.PieceTypePawn:   100,
	gm.PieceTypeKnight: 320,
	gm.PieceTypeBishop: 330,
	gm.PieceTypeRook:   500,
	gm.PieceTypeQueen:  900,
	gm.PieceTypeKing:   20000,
}

// Evaluation returns the static material balance of the position from
// White's perspective: positive favors White, negative favors Black.
func Evaluation(b *gm.Board) int32 {
	var score int32
	for sq := gm.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == gm.NoPiece {
			continue
		}
		v := PieceValue[p.Type()]
		if p.Color() == gm.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}
