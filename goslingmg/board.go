package goslingmg

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece is treated as White.
func (p Piece) Color() Color { return colorOf(p) }

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

// Square represents a board position (0-63), a1 = 0, h8 = 63.
type Square int

const NoSquare Square = -1

// SquareAt builds a square from rank and file indices (both 0-7).
// Out-of-range coordinates yield NoSquare so callers may probe speculatively.
func SquareAt(rank, file int) Square {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// Rank returns the rank index of the square (0 = rank 1).
func (sq Square) Rank() int { return int(sq) / 8 }

// File returns the file index of the square (0 = file a).
func (sq Square) File() int { return int(sq) % 8 }

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

// String renders the square in algebraic form, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// Board represents the chess board state: a mailbox array of pieces plus the
// side to move. The model tracks no castling rights, en passant square or
// move clocks; those rules are outside it entirely.
type Board struct {
	pieces     [64]Piece
	sideToMove Color
}

// NewGame returns a board in the standard initial arrangement, White to move.
func NewGame() *Board {
	var b Board
	backRank := [8]PieceType{
		PieceTypeRook, PieceTypeKnight, PieceTypeBishop, PieceTypeQueen,
		PieceTypeKing, PieceTypeBishop, PieceTypeKnight, PieceTypeRook,
	}
	for file := 0; file < 8; file++ {
		b.pieces[SquareAt(0, file)] = PieceFromType(White, backRank[file])
		b.pieces[SquareAt(1, file)] = WhitePawn
		b.pieces[SquareAt(6, file)] = BlackPawn
		b.pieces[SquareAt(7, file)] = PieceFromType(Black, backRank[file])
	}
	b.sideToMove = White
	return &b
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[int(sq)] }

// SetPiece sets a piece on a square, replacing any existing piece.
func (b *Board) SetPiece(sq Square, p Piece) { b.pieces[int(sq)] = p }

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { b.pieces[int(sq)] = NoPiece }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// SetSideToMove updates the side to play. Use with care; normal move making toggles automatically.
func (b *Board) SetSideToMove(c Color) { b.sideToMove = c }

// HasLegalMoves reports whether the side to move has any legal moves.
func (b *Board) HasLegalMoves() bool {
	return len(b.GenerateMoves()) > 0
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// colorOf returns the color of a piece. NoPiece is treated as White.
func colorOf(p Piece) Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// sameColor reports whether two occupied squares hold pieces of one side.
func sameColor(a, b Piece) bool {
	if a == NoPiece || b == NoPiece {
		return false
	}
	return colorOf(a) == colorOf(b)
}
