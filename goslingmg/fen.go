package goslingmg

import (
	"errors"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Startpos constant.
const Startpos = FENStartPos

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// CharFromPiece converts a Piece constant to its FEN character representation.
func CharFromPiece(p Piece) rune {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return '?' // should not happen for valid pieces
	}
}

// ParseFEN parses a FEN string and returns a new Board set up to that
// position. Only piece placement and side to move are meaningful to this
// model; castling rights, en passant square and the move clocks are accepted
// but discarded, since the rules they feed are not represented.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	board := &Board{}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, errors.New("invalid FEN: empty rank description")
		}
		rankIndex := 7 - i // first FEN rank is rank 8
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				// Digit: skip that many files (empty squares)
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			board.pieces[rankIndex*8+file] = piece
			file++
		}
		if file != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		board.sideToMove = White
	case "b":
		board.sideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// Remaining fields (castling, en passant, clocks) are ignored.
	return board, nil
}

// ParseFen is a FEN parser that panics on invalid input, for fixed strings.
func ParseFen(fen string) Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return *b
}

// ToFEN renders the position as a FEN string. The castling, en passant and
// clock fields are emitted as placeholders because the model does not track
// them.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[rank*8+file]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(CharFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if b.sideToMove == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}
