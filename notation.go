package main

import (
	"strings"

	gm "gosling-engine/goslingmg"
)

// parseMove resolves a user move token against the current position.
//
// Accepted forms:
//   - coordinate: "e2e4"
//   - algebraic: "e4", "exd5", "Nf3", "Bxd3", with optional file/rank/square
//     disambiguation ("Nbd2", "R1e1"). The piece letter's case selects the
//     color: uppercase is a white piece, lowercase black. A letter that
//     contradicts the side to move is rejected.
//
// Castling tokens are rejected; castling is outside the move model. The
// returned move is always legal (king safety included).
func parseMove(b *gm.Board, token string) (gm.Move, bool) {
	s := strings.TrimSpace(token)

	switch s {
	case "O-O", "o-o", "0-0", "O-O-O", "o-o-o", "0-0-0":
		// Castling is not part of the move model.
		return gm.NoMove, false
	}

	// Coordinate form: e2e4. A pawn-capture token like "exd5" is also four
	// characters starting with a file letter, so require digits in the rank
	// positions before taking this branch.
	if len(s) == 4 &&
		s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8' &&
		s[2] >= 'a' && s[2] <= 'h' && s[3] >= '1' && s[3] <= '8' {
		from, okFrom := squareFromString(s[:2])
		to, okTo := squareFromString(s[2:])
		if okFrom && okTo && b.PieceAt(from).Color() == b.SideToMove() &&
			b.PieceAt(from) != gm.NoPiece && b.IsPseudoLegal(from, to) {
			return checkedMove(b, from, to)
		}
		return gm.NoMove, false
	}

	// Algebraic form. A leading piece letter selects the piece type, and its
	// case the color; no letter means a pawn of the side to move.
	pieceType := gm.PieceTypePawn
	color := b.SideToMove()
	body := s
	if len(s) > 0 {
		if pt, c, ok := pieceFromLetter(s[0]); ok {
			pieceType, color, body = pt, c, s[1:]
		}
	}
	if color != b.SideToMove() {
		return gm.NoMove, false
	}

	body = strings.NewReplacer("x", "", "+", "", "#", "").Replace(body)
	if len(body) < 2 {
		return gm.NoMove, false
	}
	to, ok := squareFromString(body[len(body)-2:])
	if !ok {
		return gm.NoMove, false
	}
	disamb := body[:len(body)-2]

	want := gm.PieceFromType(color, pieceType)
	var candidates []gm.Square
	for from := gm.Square(0); from < 64; from++ {
		if b.PieceAt(from) == want && b.IsPseudoLegal(from, to) {
			candidates = append(candidates, from)
		}
	}
	if disamb != "" {
		var filtered []gm.Square
		for _, from := range candidates {
			fileStr := string([]byte{'a' + byte(from.File())})
			rankStr := string([]byte{'1' + byte(from.Rank())})
			if disamb == fileStr || disamb == rankStr || disamb == fileStr+rankStr {
				filtered = append(filtered, from)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	if len(candidates) == 0 {
		return gm.NoMove, false
	}
	return checkedMove(b, candidates[0], to)
}

// checkedMove builds the move and verifies it does not leave the mover's own
// king attacked.
func checkedMove(b *gm.Board, from, to gm.Square) (gm.Move, bool) {
	mover := b.SideToMove()
	m := gm.NewMove(from, to)
	captured := b.MakeMove(m)
	inCheck := b.InCheck(mover)
	b.UnmakeMove(m, captured)
	if inCheck {
		return gm.NoMove, false
	}
	return m, true
}

// squareFromString parses an algebraic square like "e4".
func squareFromString(s string) (gm.Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return gm.NoSquare, false
	}
	return gm.SquareAt(int(s[1]-'1'), int(s[0]-'a')), true
}

// pieceFromLetter maps an algebraic piece letter to its type and color.
func pieceFromLetter(ch byte) (gm.PieceType, gm.Color, bool) {
	color := gm.White
	if ch >= 'a' && ch <= 'z' {
		color = gm.Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'N':
		return gm.PieceTypeKnight, color, true
	case 'B':
		return gm.PieceTypeBishop, color, true
	case 'R':
		return gm.PieceTypeRook, color, true
	case 'Q':
		return gm.PieceTypeQueen, color, true
	case 'K':
		return gm.PieceTypeKing, color, true
	}
	return gm.PieceTypeNone, color, false
}
