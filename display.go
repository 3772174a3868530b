package main

import (
	"fmt"

	gm "gosling-engine/goslingmg"
)

// printBoard renders the position from White's point of view with file and
// rank legends on both edges.
func printBoard(b *gm.Board) {
	fmt.Println("\n   a b c d e f g h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			p := b.PieceAt(gm.SquareAt(rank, file))
			if p == gm.NoPiece {
				fmt.Print(" .")
			} else {
				fmt.Printf(" %c", gm.CharFromPiece(p))
			}
		}
		fmt.Printf("  %d\n", rank+1)
	}
	fmt.Println("   a b c d e f g h")
	fmt.Println()
}

// moveToSAN renders a move in a SAN-like form for display ("Nf3", "exd5").
// Must be called before the move is made; it reads the moving and captured
// pieces off the board. No check/mate suffixes and no disambiguation.
func moveToSAN(b *gm.Board, m gm.Move) string {
	piece := b.PieceAt(m.From())
	capture := b.PieceAt(m.To()) != gm.NoPiece

	if piece.Type() == gm.PieceTypePawn {
		if capture {
			return fmt.Sprintf("%cx%s", 'a'+byte(m.From().File()), m.To())
		}
		return m.To().String()
	}
	letter := pieceLetter(piece.Type())
	if capture {
		return fmt.Sprintf("%cx%s", letter, m.To())
	}
	return fmt.Sprintf("%c%s", letter, m.To())
}

func pieceLetter(pt gm.PieceType) byte {
	switch pt {
	case gm.PieceTypeKnight:
		return 'N'
	case gm.PieceTypeBishop:
		return 'B'
	case gm.PieceTypeRook:
		return 'R'
	case gm.PieceTypeQueen:
		return 'Q'
	case gm.PieceTypeKing:
		return 'K'
	}
	return 'P'
}
