package goslingmg

// GeneratePseudoMoves enumerates every geometrically valid move for the side
// to move, ignoring king safety. Ordering within the list follows board scan
// order (a1..h8 by piece, then by destination); consumers that care about
// ordering re-sort.
func (b *Board) GeneratePseudoMoves() []Move {
	moves := make([]Move, 0, 64)
	us := b.sideToMove
	for from := Square(0); from < 64; from++ {
		p := b.pieces[from]
		if p == NoPiece || colorOf(p) != us {
			continue
		}
		switch p.Type() {
		case PieceTypePawn:
			moves = b.pawnMoves(from, moves)
		case PieceTypeKnight:
			moves = b.offsetMoves(from, knightOffsets[:], moves)
		case PieceTypeBishop:
			moves = b.sliderMoves(from, bishopDirs[:], moves)
		case PieceTypeRook:
			moves = b.sliderMoves(from, rookDirs[:], moves)
		case PieceTypeQueen:
			moves = b.sliderMoves(from, rookDirs[:], moves)
			moves = b.sliderMoves(from, bishopDirs[:], moves)
		case PieceTypeKing:
			moves = b.offsetMoves(from, kingOffsets[:], moves)
		}
	}
	return moves
}

// pawnMoves appends single and double pushes onto empty squares and diagonal
// captures. No en passant and no promotion: a pawn reaching the last rank
// stays a pawn.
func (b *Board) pawnMoves(from Square, moves []Move) []Move {
	p := b.pieces[from]
	dir, startRank := 1, 1
	if colorOf(p) == Black {
		dir, startRank = -1, 6
	}
	rank, file := from.Rank(), from.File()

	if one := SquareAt(rank+dir, file); one != NoSquare && b.pieces[one] == NoPiece {
		moves = append(moves, NewMove(from, one))
		if rank == startRank {
			if two := SquareAt(rank+2*dir, file); two != NoSquare && b.pieces[two] == NoPiece {
				moves = append(moves, NewMove(from, two))
			}
		}
	}
	for _, df := range [2]int{-1, 1} {
		to := SquareAt(rank+dir, file+df)
		if to == NoSquare {
			continue
		}
		if target := b.pieces[to]; target != NoPiece && !sameColor(p, target) {
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

// offsetMoves appends single-step moves for knights and kings.
func (b *Board) offsetMoves(from Square, offsets [][2]int, moves []Move) []Move {
	p := b.pieces[from]
	rank, file := from.Rank(), from.File()
	for _, off := range offsets {
		to := SquareAt(rank+off[0], file+off[1])
		if to == NoSquare {
			continue
		}
		if target := b.pieces[to]; target == NoPiece || !sameColor(p, target) {
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

// sliderMoves appends ray moves for bishops, rooks and queens: every empty
// square along each direction, plus the first enemy piece that blocks it.
func (b *Board) sliderMoves(from Square, dirs [][2]int, moves []Move) []Move {
	p := b.pieces[from]
	rank, file := from.Rank(), from.File()
	for _, d := range dirs {
		for r, f := rank+d[0], file+d[1]; ; r, f = r+d[0], f+d[1] {
			to := SquareAt(r, f)
			if to == NoSquare {
				break
			}
			target := b.pieces[to]
			if target == NoPiece {
				moves = append(moves, NewMove(from, to))
				continue
			}
			if !sameColor(p, target) {
				moves = append(moves, NewMove(from, to))
			}
			break
		}
	}
	return moves
}

// IsPseudoLegal reports whether moving from 'from' to 'to' satisfies the
// moving piece's geometry and occupancy rules, ignoring king safety and
// whose turn it is. Out-of-bounds squares are never pseudo-legal; callers
// may probe speculatively.
func (b *Board) IsPseudoLegal(from, to Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	p := b.pieces[from]
	if p == NoPiece {
		return false
	}
	target := b.pieces[to]
	if sameColor(p, target) {
		return false
	}
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()

	switch p.Type() {
	case PieceTypePawn:
		dir, startRank := 1, 1
		if colorOf(p) == Black {
			dir, startRank = -1, 6
		}
		if df == 0 {
			if target != NoPiece {
				return false
			}
			if dr == dir {
				return true
			}
			return from.Rank() == startRank && dr == 2*dir &&
				b.pieces[SquareAt(from.Rank()+dir, from.File())] == NoPiece
		}
		return abs(df) == 1 && dr == dir && target != NoPiece
	case PieceTypeKnight:
		return (abs(dr) == 2 && abs(df) == 1) || (abs(dr) == 1 && abs(df) == 2)
	case PieceTypeBishop:
		return abs(dr) == abs(df) && b.clearPath(from, to)
	case PieceTypeRook:
		return (dr == 0 || df == 0) && b.clearPath(from, to)
	case PieceTypeQueen:
		return (dr == 0 || df == 0 || abs(dr) == abs(df)) && b.clearPath(from, to)
	case PieceTypeKing:
		return max(abs(dr), abs(df)) == 1
	}
	return false
}

// clearPath reports whether every square strictly between from and to is
// empty. The squares must share a rank, file or diagonal.
func (b *Board) clearPath(from, to Square) bool {
	dr := sign(to.Rank() - from.Rank())
	df := sign(to.File() - from.File())
	for r, f := from.Rank()+dr, from.File()+df; ; r, f = r+dr, f+df {
		sq := SquareAt(r, f)
		if sq == to {
			return true
		}
		if b.pieces[sq] != NoPiece {
			return false
		}
	}
}

// GenerateMoves returns the legal moves for the side to move: each
// pseudo-legal move is made on the board, the mover's king is tested for
// attack, and the move is unconditionally unmade before the next candidate.
// This filter is the only place pin and check semantics are enforced.
func (b *Board) GenerateMoves() []Move {
	us := b.sideToMove
	pseudo := b.GeneratePseudoMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		captured := b.MakeMove(m)
		inCheck := b.InCheck(us)
		b.UnmakeMove(m, captured)
		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}
