package goslingmg

// Offset tables shared by the attack oracle and move generation.
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Rook directions: N, S, E, W. Bishop directions: NE, NW, SE, SW.
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// IsSquareAttacked reports whether any piece of 'by' has a capturing path to
// sq under the current occupancy. It ignores whose turn it is and has no
// check or pin awareness; a blocking piece of either color stops a ray, so
// only the first piece on each ray can attack. The board is not mutated.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	if !sq.Valid() {
		return false
	}
	rank, file := sq.Rank(), sq.File()

	// Knights
	for _, off := range knightOffsets {
		from := SquareAt(rank+off[0], file+off[1])
		if from != NoSquare && b.pieces[from] == PieceFromType(by, PieceTypeKnight) {
			return true
		}
	}

	// Kings (adjacent squares)
	for _, off := range kingOffsets {
		from := SquareAt(rank+off[0], file+off[1])
		if from != NoSquare && b.pieces[from] == PieceFromType(by, PieceTypeKing) {
			return true
		}
	}

	// Pawns: the attack origins sit one step back along the attacker's
	// advancing direction. White pawns advance toward higher ranks, so a
	// white pawn attacking sq stands one rank below it.
	pawnRank := rank - 1
	if by == Black {
		pawnRank = rank + 1
	}
	for _, df := range [2]int{-1, 1} {
		from := SquareAt(pawnRank, file+df)
		if from != NoSquare && b.pieces[from] == PieceFromType(by, PieceTypePawn) {
			return true
		}
	}

	// Sliders: walk each ray outward until leaving the board or hitting a
	// piece; the first occupied square decides.
	rook := PieceFromType(by, PieceTypeRook)
	queen := PieceFromType(by, PieceTypeQueen)
	for _, d := range rookDirs {
		if p := b.firstOnRay(rank, file, d[0], d[1]); p == rook || p == queen {
			return true
		}
	}
	bishop := PieceFromType(by, PieceTypeBishop)
	for _, d := range bishopDirs {
		if p := b.firstOnRay(rank, file, d[0], d[1]); p == bishop || p == queen {
			return true
		}
	}

	return false
}

// firstOnRay returns the first piece encountered walking from (rank, file)
// in direction (dr, df), or NoPiece if the ray runs off the board empty.
func (b *Board) firstOnRay(rank, file, dr, df int) Piece {
	for r, f := rank+dr, file+df; ; r, f = r+dr, f+df {
		sq := SquareAt(r, f)
		if sq == NoSquare {
			return NoPiece
		}
		if p := b.pieces[sq]; p != NoPiece {
			return p
		}
	}
}

// KingSquare returns the square of the given side's king, or NoSquare if it
// is absent from the board.
func (b *Board) KingSquare(c Color) Square {
	king := PieceFromType(c, PieceTypeKing)
	for sq := Square(0); sq < 64; sq++ {
		if b.pieces[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// InCheck reports whether the given side's king is attacked by the opponent.
// Exactly one king per side must exist during legal play; an absent king is
// an internal invariant violation and panics.
func (b *Board) InCheck(c Color) bool {
	kingSq := b.KingSquare(c)
	if kingSq == NoSquare {
		panic("goslingmg: king not on board")
	}
	return b.IsSquareAttacked(kingSq, c.Opposite())
}
