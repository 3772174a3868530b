package goslingmg

import "errors"

// Move encodes a chess move in a 16-bit value.
//
// The model carries no promotion, en passant or castling metadata; a move is
// fully described by its source and destination squares, and the capture (if
// any) is implicit in the destination's contents before the move is made.
type Move uint16

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift = 0 // 6 bits
	moveToShift   = 6 // 6 bits
)

// NoMove is the "no move" sentinel. From == To can never occur in a
// generated move, so the zero value is unambiguous.
const NoMove Move = 0

// NewMove constructs a Move value from its squares.
func NewMove(from, to Square) Move {
	return Move(uint16(from&0x3F) | uint16(to&0x3F)<<moveToShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint16(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint16(m) >> moveToShift) & 0x3F) }

// String produces the coordinate representation of the move (e.g. "e2e4").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return m.From().String() + m.To().String()
}

// ParseMove parses a coordinate move string like "e2e4". It checks syntax
// only; legality against a position is a separate concern.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, errors.New("move must be 4 characters like e2e4")
	}
	from, okFrom := parseSquare(s[:2])
	to, okTo := parseSquare(s[2:])
	if !okFrom || !okTo {
		return NoMove, errors.New("move squares out of range")
	}
	return NewMove(from, to), nil
}

func parseSquare(s string) (Square, bool) {
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, false
	}
	return SquareAt(int(s[1]-'1'), int(s[0]-'a')), true
}
